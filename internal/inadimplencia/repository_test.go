package inadimplencia

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/solarfin/api-inadimplencia/internal/cliente"
	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
)

func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("erro ao abrir sqlite em memória: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("erro ao obter *sql.DB: %v", err)
	}
	// Uma conexão só, para o :memory: não se multiplicar por conexão.
	sqlDB.SetMaxOpenConns(1)

	if err := cliente.Migrate(db); err != nil {
		t.Fatalf("migrate cliente: %v", err)
	}
	if err := contrato.Migrate(db); err != nil {
		t.Fatalf("migrate contrato: %v", err)
	}
	if err := parcela.Migrate(db); err != nil {
		t.Fatalf("migrate parcela: %v", err)
	}
	return db
}

var seqDocumento int

// semearContrato grava cliente + contrato + parcelas e devolve o ID. O
// documento é sintético, só para satisfazer o índice único.
func semearContrato(t *testing.T, db *gorm.DB, nomeCliente, integrador, origem string, parcelas []parcela.Parcela) uint {
	t.Helper()
	seqDocumento++
	cli := cliente.Cliente{Nome: nomeCliente, Documento: fmt.Sprintf("%011d", seqDocumento)}
	if err := db.Create(&cli).Error; err != nil {
		t.Fatalf("erro ao criar cliente: %v", err)
	}
	c := contrato.Contrato{
		ClienteID:          cli.ID,
		IntegradorNome:     integrador,
		Origem:             origem,
		ValorTotal:         10000,
		QuantidadeParcelas: len(parcelas),
		Status:             "ativo",
		Parcelas:           parcelas,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("erro ao criar contrato: %v", err)
	}
	return c.ID
}

func TestListarElegiveis_SoContratosComParcelaEmAtraso(t *testing.T) {
	db := abrirBanco(t)

	semearContrato(t, db, "Ana", "Solar Integra", "Loja Física", []parcela.Parcela{
		parcelaAtrasada(1, 40, 1000),
	})
	semearContrato(t, db, "Bruno", "EnerSul", "E-commerce", []parcela.Parcela{{
		Numero:          1,
		DataVencimento:  hoje.AddDate(0, 1, 0),
		ValorOriginal:   1000,
		ValorAtualizado: 1000,
		Status:          parcela.StatusAVencer,
	}})

	repo := NewRepository(db)
	contratos, err := repo.ListarElegiveis()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(contratos) != 1 {
		t.Fatalf("só o contrato da Ana tem parcela em atraso; veio %d", len(contratos))
	}
	if contratos[0].Cliente.Nome != "Ana" {
		t.Fatalf("cliente não veio carregado: %+v", contratos[0].Cliente)
	}
	if len(contratos[0].Parcelas) != 1 {
		t.Fatalf("cronograma não veio carregado")
	}
}

func TestListarOrigens_DistintasSemVazio(t *testing.T) {
	db := abrirBanco(t)

	semearContrato(t, db, "Ana", "X", "Loja Física", []parcela.Parcela{parcelaAtrasada(1, 10, 100)})
	semearContrato(t, db, "Bia", "Y", "Loja Física", []parcela.Parcela{parcelaAtrasada(1, 20, 100)})
	semearContrato(t, db, "Caio", "Z", "E-commerce", []parcela.Parcela{parcelaAtrasada(1, 30, 100)})

	repo := NewRepository(db)
	origens, err := repo.ListarOrigens()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(origens) != 2 {
		t.Fatalf("esperava 2 origens distintas, veio %v", origens)
	}
}

func servicoDeTeste(db *gorm.DB) *Service {
	s := NewService(db)
	s.Agora = func() time.Time { return hoje }
	return s
}

func TestService_ListarVazio(t *testing.T) {
	db := abrirBanco(t)
	s := servicoDeTeste(db)

	res, err := s.Listar(Criterios{Pagina: 1, Limite: 20})
	if err != nil {
		t.Fatalf("conjunto vazio é sucesso, não erro: %v", err)
	}
	if len(res.Rows) != 0 || res.Total != 0 || res.TotalPages != 0 {
		t.Fatalf("resultado vazio esperado: %+v", res)
	}
}

func TestService_ListarFimAFim(t *testing.T) {
	db := abrirBanco(t)
	s := servicoDeTeste(db)

	semearContrato(t, db, "Ana Souza", "Solar Integra", "Loja Física", []parcela.Parcela{
		parcelaAtrasada(1, 95, 1000),
		parcelaAtrasada(2, 45, 1000),
	})
	semearContrato(t, db, "Bruno Lima", "EnerSul", "E-commerce", []parcela.Parcela{
		parcelaAtrasada(1, 10, 2000),
	})

	res, err := s.Listar(Criterios{})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if res.Total != 2 || res.TotalPages != 1 {
		t.Fatalf("esperava 2 contratos em 1 página: %+v", res)
	}
	// Default: dias de atraso desc — Ana (95) vem antes de Bruno (10).
	if res.Rows[0].NomeCliente != "Ana Souza" {
		t.Fatalf("ordenação default quebrada: %+v", res.Rows)
	}
	if res.Rows[0].DiasAtraso != 95 {
		t.Fatalf("dias de atraso do contrato da Ana deveriam ser 95, veio %d", res.Rows[0].DiasAtraso)
	}
	// 1050.00 + 1030.00
	if res.Rows[0].ValorEmAtraso != 2080.00 {
		t.Fatalf("saldo em atraso da Ana esperado 2080.00, veio %v", res.Rows[0].ValorEmAtraso)
	}
}

func TestService_MetricasIdempotentes(t *testing.T) {
	db := abrirBanco(t)
	s := servicoDeTeste(db)

	semearContrato(t, db, "Ana", "X", "Loja Física", []parcela.Parcela{parcelaAtrasada(1, 200, 1000)})
	semearContrato(t, db, "Bia", "Y", "E-commerce", []parcela.Parcela{parcelaAtrasada(1, 40, 1000)})

	a, err := s.Metricas()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	b, err := s.Metricas()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if a != b {
		t.Fatalf("métricas divergiram com dados inalterados: %+v != %+v", a, b)
	}
	if a.TotalContratos != 2 || a.ContratosCriticos != 1 {
		t.Fatalf("métricas erradas: %+v", a)
	}
	// (200+40)/2 = 120
	if a.MediaDiasAtraso != 120 {
		t.Fatalf("média esperada 120, veio %d", a.MediaDiasAtraso)
	}
}

func TestService_DetalharContrato(t *testing.T) {
	db := abrirBanco(t)
	s := servicoDeTeste(db)

	id := semearContrato(t, db, "Ana", "Solar Integra", "Loja Física", []parcela.Parcela{
		parcelaAtrasada(1, 95, 1000),
		{
			Numero:          2,
			DataVencimento:  hoje.AddDate(0, 1, 0),
			ValorOriginal:   1000,
			ValorAtualizado: 1000,
			Status:          parcela.StatusAVencer,
		},
	})

	det, err := s.Detalhar(id)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(det.Parcelas) != 2 {
		t.Fatalf("cronograma completo esperado no detalhe")
	}
	if det.Parcelas[0].DiasAtraso != 95 {
		t.Fatalf("parcela atrasada deveria vir anotada com 95 dias, veio %d", det.Parcelas[0].DiasAtraso)
	}
	if det.Parcelas[1].DiasAtraso != 0 {
		t.Fatalf("parcela futura deveria vir com 0 dias")
	}
	if det.Agregado.ParcelasEmAtraso != 1 || det.Agregado.DiasAtraso != 95 {
		t.Fatalf("agregado errado: %+v", det.Agregado)
	}
}

func TestService_DetalharContratoInexistente(t *testing.T) {
	db := abrirBanco(t)
	s := servicoDeTeste(db)

	if _, err := s.Detalhar(12345); err != gorm.ErrRecordNotFound {
		t.Fatalf("esperava gorm.ErrRecordNotFound, veio %v", err)
	}
}
