package contrato

import (
	"time"

	"gorm.io/gorm"

	"github.com/solarfin/api-inadimplencia/internal/cliente"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
)

// Contrato de financiamento firmado por um cliente através de um integrador.
// O cronograma de parcelas é fixado na criação (QuantidadeParcelas) e a soma
// dos valores originais das parcelas mais a entrada fecha com o valor total.
type Contrato struct {
	gorm.Model

	ClienteID uint            `gorm:"not null;index" json:"clienteId"`
	Cliente   cliente.Cliente `gorm:"foreignKey:ClienteID" json:"cliente"`

	IntegradorNome string `gorm:"size:255;not null" json:"integradorNome"`
	IntegradorCNPJ string `gorm:"size:14" json:"integradorCnpj"`

	Origem             string    `gorm:"size:100;index" json:"origem"` // canal de venda, ex.: "Loja Física"
	DataAssinatura     time.Time `json:"dataAssinatura"`
	ValorTotal         float64   `gorm:"not null" json:"valorTotal"`
	Entrada            float64   `gorm:"not null;default:0" json:"entrada"`
	QuantidadeParcelas int       `gorm:"not null" json:"quantidadeParcelas"`
	TaxaJuros          float64   `json:"taxaJuros"`
	Status             string    `gorm:"size:50;default:'ativo'" json:"status"` // ex.: "ativo"

	Parcelas []parcela.Parcela `gorm:"foreignKey:ContratoID" json:"parcelas,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
