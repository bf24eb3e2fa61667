package inadimplencia

import (
	"gorm.io/gorm"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
)

// Repository carrega do banco o universo que o motor consome.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarElegiveis traz os contratos com pelo menos uma parcela em atraso,
// com cliente e cronograma carregados, em ordem de ID. A elegibilidade por
// dias de atraso estritamente positivos é decidida na agregação, que é a
// única dona dessa regra.
func (r *Repository) ListarElegiveis() ([]contrato.Contrato, error) {
	var contratos []contrato.Contrato
	err := r.DB.
		Preload("Cliente").
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("parcelas.numero ASC")
		}).
		Where("EXISTS (SELECT 1 FROM parcelas WHERE parcelas.contrato_id = contratos.id AND parcelas.status = ?)", parcela.StatusEmAtraso).
		Order("contratos.id ASC").
		Find(&contratos).Error
	return contratos, err
}

// ListarOrigens devolve os canais de origem distintos de todos os contratos.
func (r *Repository) ListarOrigens() ([]string, error) {
	var origens []string
	err := r.DB.Model(&contrato.Contrato{}).
		Distinct("origem").
		Where("origem <> ''").
		Order("origem ASC").
		Pluck("origem", &origens).Error
	return origens, err
}
