package contrato

import (
	"errors"
	"math"
	"time"

	"github.com/solarfin/api-inadimplencia/internal/parcela"
	"github.com/solarfin/api-inadimplencia/internal/utils"
)

// Tolerância de fechamento entre entrada + parcelas e o valor total.
const toleranciaCentavos = 0.05

var (
	ErrQuantidadeParcelas = errors.New("quantidade de parcelas deve ser maior que zero")
	ErrValoresContrato    = errors.New("entrada não pode exceder o valor total")
)

// GerarCronograma monta as N parcelas mensais de um contrato a partir do
// primeiro vencimento. A última parcela absorve a diferença de arredondamento
// para que entrada + Σ parcelas == valor total. O status de cada parcela é
// derivado da data de referência, e parcelas já vencidas nascem com o valor
// atualizado (multa + juros) aplicado.
func GerarCronograma(valorTotal, entrada float64, n int, primeiroVencimento, referencia time.Time) ([]parcela.Parcela, error) {
	if n <= 0 {
		return nil, ErrQuantidadeParcelas
	}
	if entrada > valorTotal {
		return nil, ErrValoresContrato
	}

	financiado := valorTotal - entrada
	base := utils.Round2(financiado / float64(n))

	parcelas := make([]parcela.Parcela, 0, n)
	for i := 0; i < n; i++ {
		valor := base
		if i == n-1 {
			valor = utils.Round2(financiado - base*float64(n-1))
		}

		vencimento := primeiroVencimento.AddDate(0, i, 0)
		dias := utils.DiasAtraso(vencimento, referencia)

		status := parcela.StatusAVencer
		if dias > 0 {
			status = parcela.StatusEmAtraso
		}

		parcelas = append(parcelas, parcela.Parcela{
			Numero:          i + 1,
			DataVencimento:  vencimento,
			ValorOriginal:   valor,
			ValorAtualizado: parcela.CalcularValorAtualizado(valor, dias),
			Status:          status,
		})
	}
	return parcelas, nil
}

// ValidarFechamento confere o invariante do contrato: a soma dos valores
// originais das parcelas mais a entrada fecha com o valor total dentro da
// tolerância de arredondamento.
func ValidarFechamento(c *Contrato) bool {
	var soma float64
	for i := range c.Parcelas {
		soma += c.Parcelas[i].ValorOriginal
	}
	return math.Abs(c.Entrada+soma-c.ValorTotal) <= toleranciaCentavos
}
