// Semeia o banco com uma carteira de demonstração: clientes, contratos com
// cronogramas em situações variadas (em dia, atrasados, quitados) e os
// valores atualizados de multa/juros já aplicados.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/solarfin/api-inadimplencia/internal/cliente"
	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/inadimplencia"
	"github.com/solarfin/api-inadimplencia/internal/logger"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
	"github.com/solarfin/api-inadimplencia/internal/utils/db"
)

type semente struct {
	cliente    cliente.Cliente
	integrador string
	cnpj       string
	origem     string
	valorTotal float64
	entrada    float64
	nParcelas  int
	// deslocamento do primeiro vencimento em relação a hoje, em dias
	primeiroVencimentoEm int
	parcelasPagas        int
}

var sementes = []semente{
	{
		cliente:    cliente.Cliente{Nome: "Ana Souza", Documento: "52998224725", Email: "ana.souza@example.com", Telefone: "11 98888-0001"},
		integrador: "Solar Integra", cnpj: "11222333000181", origem: "Loja Física",
		valorTotal: 24000, entrada: 4000, nParcelas: 10, primeiroVencimentoEm: -95, parcelasPagas: 0,
	},
	{
		cliente:    cliente.Cliente{Nome: "Bruno Lima", Documento: "15350946056", Email: "bruno.lima@example.com", Telefone: "21 97777-0002"},
		integrador: "EnerSul Energia", cnpj: "11222333000181", origem: "E-commerce",
		valorTotal: 60000, entrada: 10000, nParcelas: 24, primeiroVencimentoEm: -200, parcelasPagas: 3,
	},
	{
		cliente:    cliente.Cliente{Nome: "Carla Dias", Documento: "87748248800", Email: "carla.dias@example.com", Telefone: "31 96666-0003"},
		integrador: "HelioTec", cnpj: "11222333000181", origem: "Telefone",
		valorTotal: 12000, entrada: 2000, nParcelas: 12, primeiroVencimentoEm: -45, parcelasPagas: 1,
	},
	{
		cliente:    cliente.Cliente{Nome: "Diego Nunes", Documento: "11144477735", Email: "diego.nunes@example.com", Telefone: "41 95555-0004"},
		integrador: "Solar Integra", cnpj: "11222333000181", origem: "Loja Física",
		valorTotal: 18000, entrada: 3000, nParcelas: 12, primeiroVencimentoEm: 15, parcelasPagas: 0,
	},
	{
		cliente:    cliente.Cliente{Nome: "Eva Prado", Documento: "39485261098", Email: "eva.prado@example.com", Telefone: "51 94444-0005"},
		integrador: "Girassol Instalações", cnpj: "11222333000181", origem: "Indicação",
		valorTotal: 90000, entrada: 15000, nParcelas: 36, primeiroVencimentoEm: -400, parcelasPagas: 6,
	},
}

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	banco, err := db.GetDB()
	if err != nil {
		log.Fatal("erro ao conectar no banco", "erro", err)
	}
	if err := banco.AutoMigrate(&cliente.Cliente{}, &contrato.Contrato{}, &parcela.Parcela{}); err != nil {
		log.Fatal("erro no AutoMigrate", "erro", err)
	}

	agora := time.Now()
	contratoRepo := contrato.NewRepository()
	parcelaRepo := parcela.NewRepository(banco)

	for i := range sementes {
		s := &sementes[i]
		// Rodar o seed duas vezes não pode violar o índice único de documento.
		existente, err := cliente.NewRepository().BuscarPorDocumento(banco, s.cliente.Documento)
		if err == nil {
			s.cliente = *existente
		} else if err := banco.Create(&s.cliente).Error; err != nil {
			log.Fatal("erro ao criar cliente", "cliente", s.cliente.Nome, "erro", err)
		}

		primeiro := agora.AddDate(0, 0, s.primeiroVencimentoEm)
		parcelas, err := contrato.GerarCronograma(s.valorTotal, s.entrada, s.nParcelas, primeiro, agora)
		if err != nil {
			log.Fatal("erro ao gerar cronograma", "cliente", s.cliente.Nome, "erro", err)
		}

		c := contrato.Contrato{
			ClienteID:          s.cliente.ID,
			IntegradorNome:     s.integrador,
			IntegradorCNPJ:     s.cnpj,
			Origem:             s.origem,
			DataAssinatura:     primeiro.AddDate(0, -1, 0),
			ValorTotal:         s.valorTotal,
			Entrada:            s.entrada,
			QuantidadeParcelas: s.nParcelas,
			TaxaJuros:          1.49,
			Status:             "ativo",
			Parcelas:           parcelas,
		}
		if err := contratoRepo.CriarComParcelas(banco, &c); err != nil {
			log.Fatal("erro ao criar contrato", "cliente", s.cliente.Nome, "erro", err)
		}

		// Quita as primeiras N parcelas do cronograma.
		for j := 0; j < s.parcelasPagas && j < len(c.Parcelas); j++ {
			quando := c.Parcelas[j].DataVencimento
			if _, err := parcelaRepo.RegistrarPagamento(c.Parcelas[j].ID, quando); err != nil {
				log.Fatal("erro ao quitar parcela", "parcela", c.Parcelas[j].ID, "erro", err)
			}
		}

		log.Info("contrato semeado", "cliente", s.cliente.Nome, "contrato", c.ID, "parcelas", len(c.Parcelas))
	}

	// Passada final: promove vencidas e reaplica multa/juros, como a rotina
	// diária faria.
	promovidas, err := parcelaRepo.MarcarVencidas(agora)
	if err != nil {
		log.Fatal("erro ao marcar vencidas", "erro", err)
	}
	recalculadas, err := parcelaRepo.RecalcularValoresAtualizados(agora)
	if err != nil {
		log.Fatal("erro ao recalcular valores", "erro", err)
	}

	svc := inadimplencia.NewService(banco)
	m, err := svc.Metricas()
	if err != nil {
		log.Fatal("erro ao conferir métricas", "erro", err)
	}

	log.Info("seed concluído",
		"promovidas", promovidas,
		"recalculadas", recalculadas,
		"contratosInadimplentes", m.TotalContratos,
		"valorEmAtraso", m.ValorTotalEmAtraso,
	)
}
