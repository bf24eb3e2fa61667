package inadimplencia

import (
	"testing"
	"time"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
)

var hoje = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// parcelaAtrasada monta uma parcela em atraso vencida há N dias, com o valor
// atualizado calculado pela regra de multa/juros.
func parcelaAtrasada(numero, diasAtras int, valorOriginal float64) parcela.Parcela {
	venc := hoje.AddDate(0, 0, -diasAtras)
	return parcela.Parcela{
		Numero:          numero,
		DataVencimento:  venc,
		ValorOriginal:   valorOriginal,
		ValorAtualizado: parcela.CalcularValorAtualizado(valorOriginal, diasAtras),
		Status:          parcela.StatusEmAtraso,
	}
}

func TestAgregar_CenarioTresParcelas(t *testing.T) {
	// Três parcelas de 1000, vencidas há 10, 45 e 95 dias.
	c := &contrato.Contrato{
		Parcelas: []parcela.Parcela{
			parcelaAtrasada(1, 95, 1000),
			parcelaAtrasada(2, 45, 1000),
			parcelaAtrasada(3, 10, 1000),
		},
	}

	ag := Agregar(c, hoje)

	if ag.ParcelasEmAtraso != 3 {
		t.Fatalf("esperava 3 parcelas em atraso, veio %d", ag.ParcelasEmAtraso)
	}
	if ag.DiasAtraso != 95 {
		t.Fatalf("dias de atraso do contrato deveriam ser 95, veio %d", ag.DiasAtraso)
	}
	esperadoVenc := hoje.AddDate(0, 0, -95)
	if ag.VencimentoMaisAntigo == nil || !ag.VencimentoMaisAntigo.Equal(esperadoVenc) {
		t.Fatalf("vencimento mais antigo errado: %v", ag.VencimentoMaisAntigo)
	}
	// 1050.00 (95d) + 1030.00 (45d) + 1020.00 (10d)
	if ag.ValorEmAtraso != 3100.00 {
		t.Fatalf("valor em atraso esperado 3100.00, veio %v", ag.ValorEmAtraso)
	}
}

func TestAgregar_IgnoraParcelasPagasEAVencer(t *testing.T) {
	paga := parcelaAtrasada(1, 200, 500)
	paga.Status = parcela.StatusPaga

	futura := parcela.Parcela{
		Numero:          3,
		DataVencimento:  hoje.AddDate(0, 1, 0),
		ValorOriginal:   500,
		ValorAtualizado: 500,
		Status:          parcela.StatusAVencer,
	}

	c := &contrato.Contrato{
		Parcelas: []parcela.Parcela{paga, parcelaAtrasada(2, 40, 500), futura},
	}

	ag := Agregar(c, hoje)
	if ag.ParcelasEmAtraso != 1 {
		t.Fatalf("só a parcela em atraso deveria contar, veio %d", ag.ParcelasEmAtraso)
	}
	if ag.DiasAtraso != 40 {
		t.Fatalf("parcela paga não pode puxar o atraso: veio %d dias", ag.DiasAtraso)
	}
}

func TestAgregar_SemAtrasoFicaZerado(t *testing.T) {
	c := &contrato.Contrato{
		Parcelas: []parcela.Parcela{{
			Numero:          1,
			DataVencimento:  hoje.AddDate(0, 1, 0),
			ValorOriginal:   100,
			ValorAtualizado: 100,
			Status:          parcela.StatusAVencer,
		}},
	}

	ag := Agregar(c, hoje)
	if ag.ParcelasEmAtraso != 0 || ag.ValorEmAtraso != 0 || ag.DiasAtraso != 0 {
		t.Fatalf("agregado deveria ser zerado: %+v", ag)
	}
	if ag.VencimentoMaisAntigo != nil {
		t.Fatalf("sem atraso não há vencimento mais antigo")
	}
}

func TestAgregar_EmpateDeVencimentoFicaComAPrimeira(t *testing.T) {
	a := parcelaAtrasada(1, 30, 100)
	b := parcelaAtrasada(2, 30, 200)
	c := &contrato.Contrato{Parcelas: []parcela.Parcela{a, b}}

	ag := Agregar(c, hoje)
	if !ag.VencimentoMaisAntigo.Equal(a.DataVencimento) {
		t.Fatalf("empate deveria manter a primeira parcela da ordem estável")
	}
	if ag.DiasAtraso != 30 {
		t.Fatalf("dias de atraso esperados 30, veio %d", ag.DiasAtraso)
	}
}

func TestAgregar_SaldoZeroImplicaContagemZero(t *testing.T) {
	c := &contrato.Contrato{}
	ag := Agregar(c, hoje)
	if (ag.ValorEmAtraso == 0) != (ag.ParcelasEmAtraso == 0) {
		t.Fatalf("saldo zero e contagem zero devem andar juntos: %+v", ag)
	}
}
