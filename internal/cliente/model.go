package cliente

import (
	"gorm.io/gorm"
)

// Cliente é o tomador do financiamento. Depois do cadastro, apenas os campos
// de contato (email, telefone, endereço) podem ser alterados.
type Cliente struct {
	gorm.Model
	Nome      string `json:"nome" gorm:"size:255;not null"`
	Documento string `json:"documento" gorm:"size:14;not null;uniqueIndex"` // CPF ou CNPJ, só dígitos
	Email     string `json:"email" gorm:"size:255"`
	Telefone  string `json:"telefone" gorm:"size:30"`
	Endereco  string `json:"endereco" gorm:"type:text"` // blob estruturado livre (JSON da UI)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
