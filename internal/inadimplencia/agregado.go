// Package inadimplencia concentra o motor de cobrança: agregação por
// contrato, elegibilidade, filtros, ordenação, paginação e métricas globais.
package inadimplencia

import (
	"time"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
	"github.com/solarfin/api-inadimplencia/internal/utils"
)

// Agregado é o resumo de atraso de um contrato, recalculado a cada consulta.
type Agregado struct {
	ParcelasEmAtraso     int        `json:"overdueInstallmentCount"`
	ValorEmAtraso        float64    `json:"overdueBalance"`
	VencimentoMaisAntigo *time.Time `json:"oldestOverdueDueDate"`
	DiasAtraso           int        `json:"contractDelayDays"`
}

// Agregar percorre as parcelas do contrato (já carregadas, em ordem de
// número) e monta o resumo: conta e soma as parcelas em atraso e localiza o
// vencimento mais antigo. Em empate de vencimento vale a primeira parcela
// encontrada na ordem estável. Sem parcela em atraso o agregado é zerado.
func Agregar(c *contrato.Contrato, referencia time.Time) Agregado {
	var ag Agregado
	for i := range c.Parcelas {
		p := &c.Parcelas[i]
		if p.Status != parcela.StatusEmAtraso {
			continue
		}
		ag.ParcelasEmAtraso++
		ag.ValorEmAtraso += p.ValorAtualizado
		if ag.VencimentoMaisAntigo == nil || p.DataVencimento.Before(*ag.VencimentoMaisAntigo) {
			venc := p.DataVencimento
			ag.VencimentoMaisAntigo = &venc
		}
	}
	if ag.VencimentoMaisAntigo != nil {
		ag.ValorEmAtraso = utils.Round2(ag.ValorEmAtraso)
		ag.DiasAtraso = utils.DiasAtraso(*ag.VencimentoMaisAntigo, referencia)
	}
	return ag
}
