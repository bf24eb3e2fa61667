package inadimplencia

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/criticidade"
	"github.com/solarfin/api-inadimplencia/internal/utils"
)

// Limiar de dias para a contagem de contratos críticos das métricas.
// Independente dos limiares do classificador de criticidade.
const diasCriticoMetrica = 180

// MontarLinhas agrega cada contrato e descarta os não elegíveis: só entra
// quem tem parcela em atraso E dias de atraso estritamente positivos
// (vencimento de hoje ainda não conta como atraso).
func MontarLinhas(contratos []contrato.Contrato, referencia time.Time) []Linha {
	linhas := make([]Linha, 0, len(contratos))
	for i := range contratos {
		c := &contratos[i]
		ag := Agregar(c, referencia)
		if ag.ParcelasEmAtraso == 0 || ag.DiasAtraso <= 0 {
			continue
		}
		linhas = append(linhas, Linha{
			ContratoID:           c.ID,
			NomeCliente:          c.Cliente.Nome,
			Integrador:           c.IntegradorNome,
			Origem:               c.Origem,
			VencimentoMaisAntigo: *ag.VencimentoMaisAntigo,
			DiasAtraso:           ag.DiasAtraso,
			ValorEmAtraso:        ag.ValorEmAtraso,
			Status:               c.Status,
			Criticidade:          criticidade.Classificar(ag.DiasAtraso, ag.ValorEmAtraso),
		})
	}
	return linhas
}

/* ================================ Filtros ================================ */

// Filtrar aplica busca textual, faixas de atraso (união), origens e status.
func Filtrar(linhas []Linha, crit Criterios) []Linha {
	busca := strings.ToLower(strings.TrimSpace(crit.Busca))

	var origens map[string]bool
	if len(crit.Origens) > 0 {
		origens = make(map[string]bool, len(crit.Origens))
		for _, o := range crit.Origens {
			origens[o] = true
		}
	}

	resultado := make([]Linha, 0, len(linhas))
	for _, l := range linhas {
		if busca != "" &&
			!strings.Contains(strings.ToLower(l.NomeCliente), busca) &&
			!strings.Contains(strings.ToLower(l.Integrador), busca) {
			continue
		}
		if len(crit.Faixas) > 0 && !dentroDeAlgumaFaixa(l.DiasAtraso, crit.Faixas) {
			continue
		}
		if origens != nil && !origens[l.Origem] {
			continue
		}
		if crit.Status != "" && l.Status != crit.Status {
			continue
		}
		resultado = append(resultado, l)
	}
	return resultado
}

func dentroDeAlgumaFaixa(dias int, ids []string) bool {
	for _, id := range ids {
		f, ok := faixaPorID[id]
		if !ok {
			continue
		}
		if dias >= f.Min && dias <= f.Max {
			return true
		}
	}
	return false
}

/* =============================== Ordenação =============================== */

// Ordenar aplica o campo/direção pedidos com desempate estável por ID de
// contrato crescente.
func Ordenar(linhas []Linha, campo, direcao string) {
	desc := direcao != DirecaoAsc

	sort.Slice(linhas, func(i, j int) bool {
		a, b := linhas[i], linhas[j]

		cmp := 0
		switch campo {
		case OrdenarPorValorEmAtraso:
			cmp = comparar(a.ValorEmAtraso, b.ValorEmAtraso)
		case OrdenarPorNomeCliente:
			cmp = strings.Compare(strings.ToLower(a.NomeCliente), strings.ToLower(b.NomeCliente))
		case OrdenarPorDataVencimento:
			switch {
			case a.VencimentoMaisAntigo.Before(b.VencimentoMaisAntigo):
				cmp = -1
			case a.VencimentoMaisAntigo.After(b.VencimentoMaisAntigo):
				cmp = 1
			}
		default: // OrdenarPorDiasAtraso
			cmp = comparar(float64(a.DiasAtraso), float64(b.DiasAtraso))
		}

		if cmp == 0 {
			return a.ContratoID < b.ContratoID
		}
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func comparar(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

/* =============================== Paginação =============================== */

// Paginar recorta a página pedida; página além do fim retorna vazio.
func Paginar(linhas []Linha, pagina, limite int) ([]Linha, int) {
	total := len(linhas)
	totalPaginas := 0
	if limite > 0 {
		totalPaginas = int(math.Ceil(float64(total) / float64(limite)))
	}

	inicio := (pagina - 1) * limite
	if inicio >= total {
		return []Linha{}, totalPaginas
	}
	fim := inicio + limite
	if fim > total {
		fim = total
	}
	return linhas[inicio:fim], totalPaginas
}

/* ================================ Métricas ================================ */

// CalcularMetricas resume o universo elegível completo: total de contratos,
// soma do valor em atraso, média de dias (arredondada, 0 se vazio) e
// contagem de contratos com 180+ dias.
func CalcularMetricas(linhas []Linha) Metricas {
	m := Metricas{TotalContratos: len(linhas)}
	if len(linhas) == 0 {
		return m
	}

	somaDias := 0
	for _, l := range linhas {
		m.ValorTotalEmAtraso += l.ValorEmAtraso
		somaDias += l.DiasAtraso
		if l.DiasAtraso >= diasCriticoMetrica {
			m.ContratosCriticos++
		}
	}
	m.ValorTotalEmAtraso = utils.Round2(m.ValorTotalEmAtraso)
	m.MediaDiasAtraso = int(math.Round(float64(somaDias) / float64(len(linhas))))
	return m
}
