package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/solarfin/api-inadimplencia/internal/cliente"
	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/inadimplencia"
	"github.com/solarfin/api-inadimplencia/internal/logger"
	"github.com/solarfin/api-inadimplencia/internal/middleware"
	"github.com/solarfin/api-inadimplencia/internal/parcela"
	"github.com/solarfin/api-inadimplencia/internal/utils/db"
)

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

	// AutoMigrate para todos os modelos
	if err := banco.AutoMigrate(
		&cliente.Cliente{},
		&contrato.Contrato{},
		&parcela.Parcela{},
	); err != nil {
		log.Fatal("erro no AutoMigrate", "erro", err)
	}

	// Handlers
	clienteHandler := cliente.NewHandler(banco)
	contratoHandler := contrato.NewHandler(banco)
	parcelaHandler := parcela.NewHandler(parcela.NewRepository(banco))
	inadimplenciaHandler := inadimplencia.NewHandler(inadimplencia.NewService(banco))

	// Router
	r := mux.NewRouter()

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}/contato", clienteHandler.AtualizarContato).Methods("PATCH")

	// Rotas de contratos
	r.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	r.HandleFunc("/contratos", contratoHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/contratos/{id}", inadimplenciaHandler.DetalharContrato).Methods("GET")
	r.HandleFunc("/contratos/{id}/parcelas", parcelaHandler.ListarPorContrato).Methods("GET")

	// Rotas de parcelas
	r.HandleFunc("/parcelas/{pid}/pagamento", parcelaHandler.RegistrarPagamento).Methods("PATCH")
	r.HandleFunc("/parcelas/recalcular", parcelaHandler.Recalcular).Methods("POST")

	// Rotas de inadimplência
	r.HandleFunc("/inadimplencia", inadimplenciaHandler.Listar).Methods("GET")
	r.HandleFunc("/inadimplencia/metricas", inadimplenciaHandler.Metricas).Methods("GET")
	r.HandleFunc("/inadimplencia/origens", inadimplenciaHandler.Origens).Methods("GET")

	// Middlewares
	var handler http.Handler = r
	handler = middleware.RateLimit(middleware.RateLimitOptions{})(handler)
	handler = middleware.RequestLogger(log)(handler)
	handler = cors.AllowAll().Handler(handler)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Info("servidor rodando", "porta", porta)
	log.Fatal("servidor encerrou", "erro", http.ListenAndServe(":"+porta, handler))
}
