package parcela

import "github.com/solarfin/api-inadimplencia/internal/utils"

// Encargos sobre parcela em atraso: multa fixa de 2% a partir do primeiro dia
// e juros de 1% por período completo de 30 dias.
const (
	taxaMulta      = 0.02
	taxaJurosMes   = 0.01
	diasPorPeriodo = 30
)

// CalcularValorAtualizado retorna o valor original acrescido de multa e juros
// conforme os dias de atraso. Idempotente para o mesmo par (original, dias).
func CalcularValorAtualizado(valorOriginal float64, diasAtraso int) float64 {
	if diasAtraso <= 0 {
		return utils.Round2(valorOriginal)
	}
	multa := valorOriginal * taxaMulta
	juros := valorOriginal * taxaJurosMes * float64(diasAtraso/diasPorPeriodo)
	return utils.Round2(valorOriginal + multa + juros)
}
