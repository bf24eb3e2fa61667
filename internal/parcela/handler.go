package parcela

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

/* ============================== Handler ============================== */

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /contratos/{id}/parcelas
func (h *Handler) ListarPorContrato(w http.ResponseWriter, r *http.Request) {
	cid, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}
	parcelas, err := h.Repo.ListByContratoID(uint(cid))
	if err != nil {
		http.Error(w, "Erro ao buscar parcelas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(parcelas)
}

// PATCH /parcelas/{pid}/pagamento
// Registra o pagamento: transição para "paga", data de pagamento e valor pago
// iguais ao valor atualizado corrente. Parcela paga não pode ser alterada.
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	pid, err := strconv.Atoi(mux.Vars(r)["pid"])
	if err != nil {
		http.Error(w, "ID da parcela inválido", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.RegistrarPagamento(uint(pid), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "Parcela não encontrada", http.StatusNotFound)
		case errors.Is(err, ErrParcelaJaPaga):
			http.Error(w, "Parcela já está paga", http.StatusBadRequest)
		default:
			http.Error(w, "Erro ao registrar pagamento", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// POST /parcelas/recalcular
// Promove parcelas vencidas e reaplica multa/juros. Pensado para ser chamado
// por um agendador diário ou sob demanda pela operação.
func (h *Handler) Recalcular(w http.ResponseWriter, r *http.Request) {
	agora := time.Now()

	promovidas, err := h.Repo.MarcarVencidas(agora)
	if err != nil {
		http.Error(w, "Erro ao marcar parcelas vencidas", http.StatusInternalServerError)
		return
	}
	recalculadas, err := h.Repo.RecalcularValoresAtualizados(agora)
	if err != nil {
		http.Error(w, "Erro ao recalcular valores", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{
		"parcelasPromovidas":   promovidas,
		"parcelasRecalculadas": recalculadas,
	})
}
