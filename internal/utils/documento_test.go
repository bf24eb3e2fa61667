package utils

import "testing"

func TestValidarDocumento_CPFValido(t *testing.T) {
	// CPF de exemplo com dígitos verificadores corretos.
	if !ValidarDocumento("529.982.247-25") {
		t.Fatalf("CPF válido rejeitado")
	}
}

func TestValidarDocumento_CPFDigitoErrado(t *testing.T) {
	if ValidarDocumento("529.982.247-24") {
		t.Fatalf("CPF com dígito verificador errado foi aceito")
	}
}

func TestValidarDocumento_CPFRepetido(t *testing.T) {
	if ValidarDocumento("11111111111") {
		t.Fatalf("CPF de dígitos repetidos foi aceito")
	}
}

func TestValidarDocumento_CNPJValido(t *testing.T) {
	// CNPJ da Receita Federal usado como exemplo canônico.
	if !ValidarDocumento("11.222.333/0001-81") {
		t.Fatalf("CNPJ válido rejeitado")
	}
}

func TestValidarDocumento_CNPJDigitoErrado(t *testing.T) {
	if ValidarDocumento("11.222.333/0001-82") {
		t.Fatalf("CNPJ com dígito verificador errado foi aceito")
	}
}

func TestValidarDocumento_TamanhoInvalido(t *testing.T) {
	if ValidarDocumento("12345") {
		t.Fatalf("documento de tamanho inválido foi aceito")
	}
}
