package inadimplencia

import (
	"time"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/criticidade"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
)

// Linha é uma entrada da listagem de inadimplência: um contrato elegível com
// seu agregado de atraso e a criticidade derivada.
type Linha struct {
	ContratoID           uint              `json:"contractId"`
	NomeCliente          string            `json:"clientName"`
	Integrador           string            `json:"integrador"`
	Origem               string            `json:"originChannel"`
	VencimentoMaisAntigo time.Time         `json:"oldestOverdueDueDate"`
	DiasAtraso           int               `json:"contractDelayDays"`
	ValorEmAtraso        float64           `json:"overdueBalance"`
	Status               string            `json:"status"`
	Criticidade          criticidade.Nivel `json:"criticality"`
}

// ResultadoPaginado embrulha uma página da listagem.
type ResultadoPaginado struct {
	Rows       []Linha `json:"rows"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

// Metricas globais sobre o universo de contratos elegíveis, sem filtros.
type Metricas struct {
	TotalContratos     int     `json:"totalContracts"`
	ValorTotalEmAtraso float64 `json:"totalValueInDelay"`
	MediaDiasAtraso    int     `json:"averageDelayDays"`
	ContratosCriticos  int     `json:"criticalCount"`
}

// ParcelaDetalhe anota a parcela com seus próprios dias de atraso.
type ParcelaDetalhe struct {
	parcela.Parcela
	DiasAtraso int `json:"diasAtraso"`
}

// DetalheContrato é a visão completa de um contrato: cadastro, cronograma
// anotado, agregado de atraso e criticidade.
type DetalheContrato struct {
	Contrato    contrato.Contrato `json:"contrato"`
	Parcelas    []ParcelaDetalhe  `json:"parcelas"`
	Agregado    Agregado          `json:"agregado"`
	Criticidade criticidade.Nivel `json:"criticality"`
}
