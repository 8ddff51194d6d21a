package entities

// Tipologia classifies the building program of the project.

type Tipologia string

const (
	TipologiaResidencial   Tipologia = "residencial"
	TipologiaComercial     Tipologia = "comercial"
	TipologiaIndustrial    Tipologia = "industrial"
	TipologiaInstitucional Tipologia = "institucional"
)

// Padrao is the construction standard of the project (complexity band).

type Padrao string

const (
	PadraoEconomico Padrao = "economico"
	PadraoMedio     Padrao = "medio"
	PadraoAlto      Padrao = "alto"
	PadraoPremium   Padrao = "premium"
)

// Urgencia is the delivery regime requested by the client.

type Urgencia string

const (
	UrgenciaNormal   Urgencia = "normal"
	UrgenciaUrgente  Urgencia = "urgente"
	UrgenciaFlexivel Urgencia = "flexivel"
)

// ProjectParameters is the caller-supplied input of the derivation engine.
//
// Domain notes:
//   - This is the only mutable entity; everything the engine returns is
//     derived fresh from it plus the immutable catalog.
//   - The engine never persists it; storage is the caller's concern.
type ProjectParameters struct {
	ClienteID   string `json:"cliente_id"`
	ClienteNome string `json:"cliente_nome"`
	NomeProjeto string `json:"nome_projeto"`
	Descricao   string `json:"descricao,omitempty"`

	AreaTotal   float64 `json:"area_total"`
	AreaTerreno float64 `json:"area_terreno,omitempty"`

	Tipologia Tipologia `json:"tipologia"`
	Padrao    Padrao    `json:"padrao"`
	Regiao    string    `json:"regiao"`

	DisciplinasSelecionadas []string `json:"disciplinas_selecionadas"`

	Urgencia          Urgencia `json:"urgencia"`
	MargemPercentual  float64  `json:"margem_percentual"`
	PrazoDesejadoDias int      `json:"prazo_desejado_dias,omitempty"`
}

// DisciplinaSelecionada reports whether the given discipline ID was requested.
func (p ProjectParameters) DisciplinaSelecionada(id string) bool {
	for _, d := range p.DisciplinasSelecionadas {
		if d == id {
			return true
		}
	}
	return false
}
