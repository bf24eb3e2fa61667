package cliente

import "gorm.io/gorm"

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, id uint) (*Cliente, error)
	BuscarPorDocumento(db *gorm.DB, documento string) (*Cliente, error)
	ListarTodos(db *gorm.DB) ([]Cliente, error)
	AtualizarContato(db *gorm.DB, id uint, email, telefone, endereco string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Cliente, error) {
	var c Cliente
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) BuscarPorDocumento(db *gorm.DB, documento string) (*Cliente, error) {
	var c Cliente
	err := db.Where("documento = ?", documento).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Cliente, error) {
	var clientes []Cliente
	err := db.Order("nome ASC").Find(&clientes).Error
	return clientes, err
}

// AtualizarContato altera apenas os campos de contato; o restante do cadastro
// é imutável após a criação.
func (r *repositoryImpl) AtualizarContato(db *gorm.DB, id uint, email, telefone, endereco string) error {
	res := db.Model(&Cliente{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email":    email,
			"telefone": telefone,
			"endereco": endereco,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
