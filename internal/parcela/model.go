// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"

	"github.com/solarfin/api-inadimplencia/internal/utils"
)

// Status possíveis de uma parcela. "paga" é terminal.
const (
	StatusAVencer  = "a_vencer"
	StatusEmAtraso = "em_atraso"
	StatusPaga     = "paga"
)

// Parcela representa uma única parcela do cronograma de um contrato.
type Parcela struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	ContratoID      uint       `gorm:"not null;index;uniqueIndex:idx_contrato_numero" json:"contratoId"`
	Numero          int        `gorm:"not null;uniqueIndex:idx_contrato_numero" json:"numero"` // 1..N dentro do contrato
	DataVencimento  time.Time  `gorm:"not null;index" json:"dataVencimento"`
	DataPagamento   *time.Time `json:"dataPagamento"`
	ValorOriginal   float64    `gorm:"not null;default:0" json:"valorOriginal"`
	ValorAtualizado float64    `gorm:"not null;default:0" json:"valorAtualizado"` // original + multa + juros
	ValorPago       *float64   `json:"valorPago"`
	Status          string     `gorm:"size:20;not null;default:'a_vencer';index" json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// DiasAtraso retorna os dias de atraso da parcela na data de referência.
// Só tem significado enquanto a parcela está em atraso; parcelas pagas
// retornam 0.
func (p *Parcela) DiasAtraso(referencia time.Time) int {
	if p.Status == StatusPaga {
		return 0
	}
	return utils.DiasAtraso(p.DataVencimento, referencia)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
