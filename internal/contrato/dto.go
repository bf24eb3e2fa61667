package contrato

// DTO usado no POST /contratos
type ContratoCreateDTO struct {
	ClienteID          uint    `json:"clienteId"`
	IntegradorNome     string  `json:"integradorNome"`
	IntegradorCNPJ     string  `json:"integradorCnpj"`
	Origem             string  `json:"origem"`
	DataAssinatura     string  `json:"dataAssinatura"`     // RFC3339
	PrimeiroVencimento string  `json:"primeiroVencimento"` // RFC3339
	ValorTotal         float64 `json:"valorTotal"`
	Entrada            float64 `json:"entrada"`
	QuantidadeParcelas int     `json:"quantidadeParcelas"`
	TaxaJuros          float64 `json:"taxaJuros"`
}
