package utils

import (
	"math"
	"time"
)

// Round2 arredonda um valor monetário para duas casas decimais.
func Round2(valor float64) float64 {
	return math.Round(valor*100) / 100
}

// TruncarData zera o horário, mantendo apenas ano/mês/dia na mesma localização.
func TruncarData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DiasAtraso calcula os dias corridos entre o vencimento e a data de
// referência, truncados para dias inteiros e nunca negativos.
func DiasAtraso(vencimento, referencia time.Time) int {
	dias := int(TruncarData(referencia).Sub(TruncarData(vencimento)).Hours() / 24)
	if dias < 0 {
		return 0
	}
	return dias
}
