package parcela

import "testing"

func TestCalcularValorAtualizado_SemAtraso(t *testing.T) {
	if got := CalcularValorAtualizado(1000, 0); got != 1000.00 {
		t.Fatalf("sem atraso deveria manter o original, veio %v", got)
	}
}

func TestCalcularValorAtualizado_MultaSemJuros(t *testing.T) {
	// 10 dias: multa de 2%, nenhum período de 30 dias completo.
	if got := CalcularValorAtualizado(1000, 10); got != 1020.00 {
		t.Fatalf("esperava 1020.00, veio %v", got)
	}
}

func TestCalcularValorAtualizado_PeriodoCompleto(t *testing.T) {
	// 45 dias: multa 20 + juros de 1 período (10).
	if got := CalcularValorAtualizado(1000, 45); got != 1030.00 {
		t.Fatalf("esperava 1030.00, veio %v", got)
	}
}

func TestCalcularValorAtualizado_95Dias(t *testing.T) {
	// 95 dias: multa 20 + juros 1000*0.01*3 = 30.
	if got := CalcularValorAtualizado(1000, 95); got != 1050.00 {
		t.Fatalf("esperava 1050.00, veio %v", got)
	}
}

func TestCalcularValorAtualizado_Idempotente(t *testing.T) {
	a := CalcularValorAtualizado(1234.56, 77)
	b := CalcularValorAtualizado(1234.56, 77)
	if a != b {
		t.Fatalf("recalcular com os mesmos dados deveria dar o mesmo valor: %v != %v", a, b)
	}
}

func TestCalcularValorAtualizado_ArredondaCentavos(t *testing.T) {
	// 333.33 * 1.02 = 339.9966 -> 340.00
	if got := CalcularValorAtualizado(333.33, 5); got != 340.00 {
		t.Fatalf("esperava 340.00, veio %v", got)
	}
}
