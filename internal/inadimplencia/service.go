package inadimplencia

import (
	"time"

	"gorm.io/gorm"

	"github.com/solarfin/api-inadimplencia/internal/contrato"
	"github.com/solarfin/api-inadimplencia/internal/criticidade"
)

// Service compõe repositório e motor puro. Stateless: cada consulta agrega
// sobre um snapshot recém-carregado, sem estado compartilhado.
type Service struct {
	Repo         *Repository
	ContratoRepo contrato.Repository
	DB           *gorm.DB
	Agora        func() time.Time // injetável nos testes
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		Repo:         NewRepository(db),
		ContratoRepo: contrato.NewRepository(),
		DB:           db,
		Agora:        time.Now,
	}
}

// Listar aplica os critérios sobre o universo elegível e devolve a página.
func (s *Service) Listar(crit Criterios) (ResultadoPaginado, error) {
	crit = crit.Normalizar()

	contratos, err := s.Repo.ListarElegiveis()
	if err != nil {
		return ResultadoPaginado{}, err
	}

	linhas := MontarLinhas(contratos, s.Agora())
	linhas = Filtrar(linhas, crit)
	Ordenar(linhas, crit.OrdenarPor, crit.Direcao)

	total := len(linhas)
	rows, totalPaginas := Paginar(linhas, crit.Pagina, crit.Limite)

	return ResultadoPaginado{
		Rows:       rows,
		Total:      total,
		Page:       crit.Pagina,
		Limit:      crit.Limite,
		TotalPages: totalPaginas,
	}, nil
}

// Metricas resume o universo elegível completo, sem filtros.
func (s *Service) Metricas() (Metricas, error) {
	contratos, err := s.Repo.ListarElegiveis()
	if err != nil {
		return Metricas{}, err
	}
	return CalcularMetricas(MontarLinhas(contratos, s.Agora())), nil
}

// Origens devolve os canais de origem distintos observados nos contratos.
func (s *Service) Origens() ([]string, error) {
	return s.Repo.ListarOrigens()
}

// Detalhar monta a visão completa de um contrato: cronograma anotado com os
// dias de atraso de cada parcela, agregado e criticidade. Contrato inexistente
// propaga gorm.ErrRecordNotFound.
func (s *Service) Detalhar(id uint) (*DetalheContrato, error) {
	c, err := s.ContratoRepo.BuscarPorID(s.DB, id)
	if err != nil {
		return nil, err
	}

	agora := s.Agora()
	ag := Agregar(c, agora)

	parcelas := make([]ParcelaDetalhe, 0, len(c.Parcelas))
	for i := range c.Parcelas {
		p := c.Parcelas[i]
		parcelas = append(parcelas, ParcelaDetalhe{
			Parcela:    p,
			DiasAtraso: p.DiasAtraso(agora),
		})
	}

	// O cronograma já sai anotado; evita duplicar no JSON do contrato.
	c.Parcelas = nil

	return &DetalheContrato{
		Contrato:    *c,
		Parcelas:    parcelas,
		Agregado:    ag,
		Criticidade: criticidade.Classificar(ag.DiasAtraso, ag.ValorEmAtraso),
	}, nil
}
