package contrato

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/solarfin/api-inadimplencia/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	// 1) decodifica no DTO
	var dto ContratoCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// 2) parse de datas
	parse := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	dataAssinatura := parse(dto.DataAssinatura)
	primeiroVencimento := parse(dto.PrimeiroVencimento)
	if primeiroVencimento.IsZero() {
		http.Error(w, "Primeiro vencimento inválido", http.StatusBadRequest)
		return
	}

	// 3) gera o cronograma de parcelas
	agora := time.Now()
	parcelas, err := GerarCronograma(dto.ValorTotal, dto.Entrada, dto.QuantidadeParcelas, primeiroVencimento, agora)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// 4) monta o model e confere o fechamento
	c := Contrato{
		ClienteID:          dto.ClienteID,
		IntegradorNome:     dto.IntegradorNome,
		IntegradorCNPJ:     utils.SomenteDigitos(dto.IntegradorCNPJ),
		Origem:             dto.Origem,
		DataAssinatura:     dataAssinatura,
		ValorTotal:         dto.ValorTotal,
		Entrada:            dto.Entrada,
		QuantidadeParcelas: dto.QuantidadeParcelas,
		TaxaJuros:          dto.TaxaJuros,
		Status:             "ativo",
		Parcelas:           parcelas,
	}
	if !ValidarFechamento(&c) {
		http.Error(w, "Parcelas não fecham com o valor total do contrato", http.StatusBadRequest)
		return
	}

	// 5) persiste contrato + parcelas em transação
	if err := h.Repository.CriarComParcelas(h.DB, &c); err != nil {
		http.Error(w, "Erro ao criar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// GET /contratos
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	contratos, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(contratos)
}
