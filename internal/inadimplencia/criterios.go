package inadimplencia

// Campos de ordenação aceitos.
const (
	OrdenarPorDiasAtraso     = "diasAtraso"
	OrdenarPorValorEmAtraso  = "valorEmAtraso"
	OrdenarPorNomeCliente    = "nomeCliente"
	OrdenarPorDataVencimento = "dataVencimento"
)

const (
	DirecaoAsc  = "asc"
	DirecaoDesc = "desc"
)

const (
	limitePadrao = 20
	limiteMaximo = 100
)

// Faixa é um intervalo fechado de dias de atraso identificado por "D+N".
type Faixa struct {
	ID  string
	Min int
	Max int
}

// Faixas reconhecidas pelo filtro, em ordem crescente.
var Faixas = []Faixa{
	{"D+30", 1, 30},
	{"D+60", 31, 60},
	{"D+90", 61, 90},
	{"D+120", 91, 120},
	{"D+150", 121, 150},
	{"D+180", 151, 180},
	{"D+360", 181, 360},
	{"D+540", 361, 540},
	{"D+720", 541, 720},
	{"D+900", 721, 900},
	{"D+1080", 901, 1080},
}

var faixaPorID = func() map[string]Faixa {
	m := make(map[string]Faixa, len(Faixas))
	for _, f := range Faixas {
		m[f.ID] = f
	}
	return m
}()

// Criterios de consulta da listagem de inadimplência. Os handlers fazem o
// parse de strings; aqui só chegam valores tipados.
type Criterios struct {
	Busca      string   // substring, sem caixa, sobre nome do cliente OU integrador
	Faixas     []string // identificadores "D+N"; união entre as faixas
	Origens    []string // canais de origem; pertencimento ao conjunto
	Status     string   // status do contrato; vazio = todos
	OrdenarPor string
	Direcao    string
	Pagina     int
	Limite     int
}

// Normalizar corrige critérios fora de faixa em vez de falhar: página e
// limite são grampeados, campo de ordenação desconhecido cai para dias de
// atraso em ordem decrescente e faixas desconhecidas são descartadas.
func (c Criterios) Normalizar() Criterios {
	if c.Pagina < 1 {
		c.Pagina = 1
	}
	if c.Limite < 1 {
		c.Limite = limitePadrao
	}
	if c.Limite > limiteMaximo {
		c.Limite = limiteMaximo
	}

	switch c.OrdenarPor {
	case OrdenarPorDiasAtraso, OrdenarPorValorEmAtraso, OrdenarPorNomeCliente, OrdenarPorDataVencimento:
	default:
		c.OrdenarPor = OrdenarPorDiasAtraso
		c.Direcao = DirecaoDesc
	}
	if c.Direcao != DirecaoAsc {
		c.Direcao = DirecaoDesc
	}

	faixasValidas := c.Faixas[:0:0]
	for _, id := range c.Faixas {
		if _, ok := faixaPorID[id]; ok {
			faixasValidas = append(faixasValidas, id)
		}
	}
	c.Faixas = faixasValidas

	return c
}
