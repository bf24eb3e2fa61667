// internal/parcela/repository.go
package parcela

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/solarfin/api-inadimplencia/internal/utils"
)

// ErrParcelaJaPaga indica tentativa de alterar uma parcela em estado terminal.
var ErrParcelaJaPaga = errors.New("parcela já está paga")

// Repository encapsula o acesso a dados de Parcelas.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= Consultas básicas ========================= */

// FindByID busca uma única parcela pelo seu ID.
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByContratoID busca todas as parcelas de um contrato, em ordem de número.
func (r *Repository) ListByContratoID(contratoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.
		Where("contrato_id = ?", contratoID).
		Order("numero ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// CreateInBatch cria múltiplas parcelas de uma vez (ignora se vazio).
func (r *Repository) CreateInBatch(db *gorm.DB, parcelas []*Parcela) error {
	if db == nil {
		db = r.DB
	}
	if len(parcelas) == 0 {
		return nil
	}
	return db.Create(parcelas).Error
}

/* ========================= Registro de pagamento ========================= */

// RegistrarPagamento marca a parcela como paga em uma transação: define
// data_pagamento e congela valor_pago no valor_atualizado corrente. Parcela
// paga não sofre nova transição.
func (r *Repository) RegistrarPagamento(id uint, quando time.Time) (*Parcela, error) {
	var p Parcela
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if p.Status == StatusPaga {
			return ErrParcelaJaPaga
		}
		valorPago := p.ValorAtualizado
		if err := tx.Model(&Parcela{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":         StatusPaga,
				"data_pagamento": &quando,
				"valor_pago":     valorPago,
			}).Error; err != nil {
			return err
		}
		p.Status = StatusPaga
		p.DataPagamento = &quando
		p.ValorPago = &valorPago
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

/* ==================== Rotina de atualização de atraso ==================== */

// MarcarVencidas promove a_vencer -> em_atraso para toda parcela não paga cujo
// vencimento já passou na data de referência. Retorna quantas mudaram.
func (r *Repository) MarcarVencidas(referencia time.Time) (int64, error) {
	res := r.DB.Model(&Parcela{}).
		Where("status = ? AND data_vencimento < ?", StatusAVencer, utils.TruncarData(referencia)).
		Update("status", StatusEmAtraso)
	return res.RowsAffected, res.Error
}

// RecalcularValoresAtualizados reaplica multa e juros sobre todas as parcelas
// em atraso, usando a data de referência para os dias de atraso. Idempotente
// para a mesma referência; pensada para execução diária por um agendador
// externo. Retorna quantas parcelas foram recalculadas.
func (r *Repository) RecalcularValoresAtualizados(referencia time.Time) (int64, error) {
	var total int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var vencidas []Parcela
		if err := tx.Where("status = ?", StatusEmAtraso).Find(&vencidas).Error; err != nil {
			return err
		}
		for i := range vencidas {
			p := &vencidas[i]
			novoValor := CalcularValorAtualizado(p.ValorOriginal, p.DiasAtraso(referencia))
			if novoValor == p.ValorAtualizado {
				continue
			}
			if err := tx.Model(&Parcela{}).
				Where("id = ?", p.ID).
				Update("valor_atualizado", novoValor).Error; err != nil {
				return err
			}
			total++
		}
		return nil
	})
	return total, err
}
