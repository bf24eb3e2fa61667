package utils

import "strings"

// ValidarDocumento aceita CPF (11 dígitos) ou CNPJ (14 dígitos), com ou sem
// pontuação, conferindo os dígitos verificadores.
func ValidarDocumento(doc string) bool {
	digitos := SomenteDigitos(doc)
	switch len(digitos) {
	case 11:
		return validarCPF(digitos)
	case 14:
		return validarCNPJ(digitos)
	default:
		return false
	}
}

// SomenteDigitos remove tudo que não for dígito (pontos, traços, barras).
func SomenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func todosIguais(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// Dígito verificador módulo 11: soma ponderada, resto < 2 vira 0.
func dv(digitos string, pesos []int) int {
	soma := 0
	for i, p := range pesos {
		soma += int(digitos[i]-'0') * p
	}
	resto := soma % 11
	if resto < 2 {
		return 0
	}
	return 11 - resto
}

func validarCPF(cpf string) bool {
	if todosIguais(cpf) {
		return false
	}
	pesos1 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	pesos2 := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	if dv(cpf, pesos1) != int(cpf[9]-'0') {
		return false
	}
	return dv(cpf, pesos2) == int(cpf[10]-'0')
}

func validarCNPJ(cnpj string) bool {
	if todosIguais(cnpj) {
		return false
	}
	pesos1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	pesos2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if dv(cnpj, pesos1) != int(cnpj[12]-'0') {
		return false
	}
	return dv(cnpj, pesos2) == int(cnpj[13]-'0')
}
