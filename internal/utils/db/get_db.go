package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

func getenv(chave, padrao string) string {
	if v := os.Getenv(chave); v != "" {
		return v
	}
	return padrao
}

func GetDB() (*gorm.DB, error) {
	port, err := strconv.ParseUint(getenv("DB_PORT", "5432"), 10, 32)
	if err != nil {
		port = 5432 // Porta padrão do PostgreSQL
	}

	return ConnectDataBase(
		uint(port),
		getenv("DB_HOST", "localhost"),
		getenv("DB_NAME", "inadimplencia"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_SSL_MODE_DISABLE", "true") == "true",
	)
}
