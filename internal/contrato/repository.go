package contrato

import "gorm.io/gorm"

type Repository interface {
	CriarComParcelas(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, id uint) (*Contrato, error)
	ListarTodos(db *gorm.DB) ([]Contrato, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]Contrato, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// CriarComParcelas persiste o contrato e seu cronograma em uma transação.
// As parcelas já devem estar montadas em c.Parcelas; o gorm propaga o
// ContratoID pela associação.
func (r *repositoryImpl) CriarComParcelas(db *gorm.DB, c *Contrato) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Contrato, error) {
	var c Contrato
	err := db.Preload("Cliente").
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("parcelas.numero ASC")
		}).
		First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Preload("Cliente").Order("id ASC").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
		return db.Order("parcelas.numero ASC")
	}).
		Where("cliente_id = ?", clienteID).
		Order("id ASC").
		Find(&contratos).Error
	return contratos, err
}
