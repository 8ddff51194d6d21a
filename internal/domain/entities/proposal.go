package entities

// AlertSeverity tags a rule-engine warning.

type AlertSeverity string

const (
	AlertaAtencao AlertSeverity = "atencao"
	AlertaCritico AlertSeverity = "critico"
)

// SuggestionCategory tags a rule-engine opportunity.

type SuggestionCategory string

const (
	SugestaoComercial SuggestionCategory = "comercial"
	SugestaoTecnica   SuggestionCategory = "tecnica"
)

// Alert is a rule-engine risk condition. Derived fresh on every evaluation,
// never persisted.
type Alert struct {
	Mensagem   string        `json:"mensagem"`
	Severidade AlertSeverity `json:"severidade"`
}

// Suggestion is a rule-engine opportunity.
type Suggestion struct {
	Mensagem  string             `json:"mensagem"`
	Categoria SuggestionCategory `json:"categoria"`
}

// RuleReport groups the rule-engine output for one evaluation.
type RuleReport struct {
	Alertas   []Alert      `json:"alertas"`
	Sugestoes []Suggestion `json:"sugestoes"`
}

// Proposal is the external-facing commercial document shape.
//
// Pure aggregation of the pipeline results: downstream collaborators
// (PDF/email export) consume it unchanged.
type Proposal struct {
	Titulo        string `json:"titulo"`
	Cliente       string `json:"cliente"`
	ResumoProjeto string `json:"resumo_projeto"`

	ValorTotal Centavos `json:"valor_total"`
	ValorPorM2 Centavos `json:"valor_por_m2"`

	Cronograma []ScheduleStage `json:"cronograma"`

	Diferenciais        []string `json:"diferenciais"`
	CondicoesComerciais []string `json:"condicoes_comerciais"`
	ValidadeDias        int      `json:"validade_dias"`

	Alertas   []Alert      `json:"alertas"`
	Sugestoes []Suggestion `json:"sugestoes"`
}
