package request

import (
	"errors"
	"strings"

	"atelie_arq/internal/domain/entities"
)

var (
	ErrInvalidArea     = errors.New("invalid area_total")
	ErrInvalidMargem   = errors.New("invalid margem_percentual")
	ErrInvalidUrgencia = errors.New("invalid urgencia")
	ErrMissingDiscipl  = errors.New("missing disciplinas")
	ErrMissingCliente  = errors.New("missing cliente")
)

// ProposalRequest is the intake payload for a derivation run.
//
// Range validation happens here, at the boundary: the engine only ever sees
// a ProjectParameters with area > 0, margem within [0,100] and a known
// urgency level. Catalog membership (disciplinas, tipologia, regiao) is the
// engine's call, since it owns the catalog.
type ProposalRequest struct {
	ClienteID   string `json:"cliente_id" binding:"required"`
	ClienteNome string `json:"cliente_nome" binding:"required"`
	NomeProjeto string `json:"nome_projeto" binding:"required"`
	Descricao   string `json:"descricao"`

	AreaTotal   float64 `json:"area_total" binding:"required"`
	AreaTerreno float64 `json:"area_terreno"`

	Tipologia string `json:"tipologia" binding:"required"`
	Padrao    string `json:"padrao" binding:"required"`
	Regiao    string `json:"regiao" binding:"required"`

	Disciplinas []string `json:"disciplinas" binding:"required"`

	Urgencia          string  `json:"urgencia"`
	MargemPercentual  float64 `json:"margem_percentual"`
	PrazoDesejadoDias int     `json:"prazo_desejado_dias"`
}

// ToParameters validates the request ranges and converts it into the
// engine's closed input type. Urgencia defaults to normal when omitted.
func (r ProposalRequest) ToParameters() (entities.ProjectParameters, error) {
	if strings.TrimSpace(r.ClienteID) == "" || strings.TrimSpace(r.ClienteNome) == "" {
		return entities.ProjectParameters{}, ErrMissingCliente
	}
	if r.AreaTotal <= 0 {
		return entities.ProjectParameters{}, ErrInvalidArea
	}
	if r.MargemPercentual < 0 || r.MargemPercentual > 100 {
		return entities.ProjectParameters{}, ErrInvalidMargem
	}
	if len(r.Disciplinas) == 0 {
		return entities.ProjectParameters{}, ErrMissingDiscipl
	}

	urgencia := entities.Urgencia(strings.TrimSpace(strings.ToLower(r.Urgencia)))
	if urgencia == "" {
		urgencia = entities.UrgenciaNormal
	}
	switch urgencia {
	case entities.UrgenciaNormal, entities.UrgenciaUrgente, entities.UrgenciaFlexivel:
	default:
		return entities.ProjectParameters{}, ErrInvalidUrgencia
	}

	return entities.ProjectParameters{
		ClienteID:               strings.TrimSpace(r.ClienteID),
		ClienteNome:             strings.TrimSpace(r.ClienteNome),
		NomeProjeto:             strings.TrimSpace(r.NomeProjeto),
		Descricao:               strings.TrimSpace(r.Descricao),
		AreaTotal:               r.AreaTotal,
		AreaTerreno:             r.AreaTerreno,
		Tipologia:               entities.Tipologia(strings.TrimSpace(strings.ToLower(r.Tipologia))),
		Padrao:                  entities.Padrao(strings.TrimSpace(strings.ToLower(r.Padrao))),
		Regiao:                  strings.TrimSpace(strings.ToLower(r.Regiao)),
		DisciplinasSelecionadas: r.Disciplinas,
		Urgencia:                urgencia,
		MargemPercentual:        r.MargemPercentual,
		PrazoDesejadoDias:       r.PrazoDesejadoDias,
	}, nil
}
