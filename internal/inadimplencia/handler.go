package inadimplencia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

type erroDTO struct {
	Erro   string `json:"erro"`
	Codigo string `json:"codigo"`
}

func respondErro(w http.ResponseWriter, status int, codigo, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(erroDTO{Erro: msg, Codigo: codigo})
}

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// separa lista "a,b,c" vinda da query string, descartando vazios.
func splitLista(s string) []string {
	if s == "" {
		return nil
	}
	partes := strings.Split(s, ",")
	out := partes[:0]
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GET /inadimplencia
// O parse de strings mora aqui; o serviço só recebe critérios tipados e
// valores fora de faixa são corrigidos, nunca viram erro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pagina, _ := strconv.Atoi(q.Get("pagina"))
	limite, _ := strconv.Atoi(q.Get("limite"))

	crit := Criterios{
		Busca:      q.Get("busca"),
		Faixas:     splitLista(q.Get("faixas")),
		Origens:    splitLista(q.Get("origens")),
		Status:     q.Get("status"),
		OrdenarPor: q.Get("ordenarPor"),
		Direcao:    q.Get("direcao"),
		Pagina:     pagina,
		Limite:     limite,
	}

	resultado, err := h.Service.Listar(crit)
	if err != nil {
		respondErro(w, http.StatusInternalServerError, "ERRO_CONSULTA", "Erro ao consultar inadimplência")
		return
	}
	respondJSON(w, resultado)
}

// GET /inadimplencia/metricas
func (h *Handler) Metricas(w http.ResponseWriter, r *http.Request) {
	m, err := h.Service.Metricas()
	if err != nil {
		respondErro(w, http.StatusInternalServerError, "ERRO_CONSULTA", "Erro ao calcular métricas")
		return
	}
	respondJSON(w, m)
}

// GET /inadimplencia/origens
func (h *Handler) Origens(w http.ResponseWriter, r *http.Request) {
	origens, err := h.Service.Origens()
	if err != nil {
		respondErro(w, http.StatusInternalServerError, "ERRO_CONSULTA", "Erro ao listar origens")
		return
	}
	respondJSON(w, origens)
}

// GET /contratos/{id}
func (h *Handler) DetalharContrato(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		respondErro(w, http.StatusBadRequest, "ID_INVALIDO", "ID de contrato inválido")
		return
	}

	detalhe, err := h.Service.Detalhar(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondErro(w, http.StatusNotFound, "NAO_ENCONTRADO", "Contrato não encontrado")
			return
		}
		respondErro(w, http.StatusInternalServerError, "ERRO_CONSULTA", "Erro ao buscar contrato")
		return
	}
	respondJSON(w, detalhe)
}
