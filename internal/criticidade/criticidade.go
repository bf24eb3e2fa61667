// Package criticidade classifica a severidade da inadimplência de um
// contrato a partir dos dias de atraso e do valor em aberto. O sinal mais
// grave entre os dois prevalece.
package criticidade

// Nivel de criticidade de um contrato inadimplente.
type Nivel string

const (
	Baixa   Nivel = "low"
	Media   Nivel = "medium"
	Alta    Nivel = "high"
	Critica Nivel = "critical"
)

// Limiares de dias de atraso.
const (
	diasMedia   = 30
	diasAlta    = 90
	diasCritica = 180
)

// Limiares de valor em atraso.
const (
	valorMedia   = 5000.0
	valorAlta    = 20000.0
	valorCritica = 50000.0
)

// Classificar mapeia (dias de atraso, valor em atraso) para um nível.
// Entradas são sempre não negativas por contrato da chamada.
func Classificar(diasAtraso int, valorEmAtraso float64) Nivel {
	switch {
	case diasAtraso >= diasCritica || valorEmAtraso >= valorCritica:
		return Critica
	case diasAtraso >= diasAlta || valorEmAtraso >= valorAlta:
		return Alta
	case diasAtraso >= diasMedia || valorEmAtraso >= valorMedia:
		return Media
	default:
		return Baixa
	}
}
