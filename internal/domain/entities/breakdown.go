package entities

// Centavos is a monetary amount in integer cents (BRL).
//
// Monetary representation:
//   - All engine math happens in Centavos so the reconciliation invariants
//     hold exactly; conversion to reais happens only at the boundary.

type Centavos int64

// Reais converts the amount to display currency units.
func (c Centavos) Reais() float64 {
	return float64(c) / 100.0
}

// CostLineKind discriminates the breakdown line items.

type CostLineKind string

const (
	CostLineDisciplina   CostLineKind = "disciplina"
	CostLineSobreposicao CostLineKind = "sobreposicao"
	CostLineCoordenacao  CostLineKind = "coordenacao"
)

// CostLine is one itemized entry of the breakdown.
type CostLine struct {
	DisciplinaID string       `json:"disciplina_id,omitempty"`
	Nome         string       `json:"nome"`
	Tipo         CostLineKind `json:"tipo"`
	Valor        Centavos     `json:"valor"`
}

// CostBreakdown is the derived, immutable result of the cost calculators.
//
// Invariant: the line items reconcile exactly to ValorTotal —
// SubtotalDisciplinas + SubtotalSobreposicao + TaxaCoordenacao == ValorTotal.
// AjusteUrgencia and Margem are informational: their amounts are already
// folded proportionally into the line items so the invariant stays exact.
type CostBreakdown struct {
	Regiao    string    `json:"regiao"`
	Tipologia Tipologia `json:"tipologia"`
	Padrao    Padrao    `json:"padrao"`
	AreaTotal float64   `json:"area_total"`

	ValorBase              Centavos `json:"valor_base"`
	MultiplicadorTipologia float64  `json:"multiplicador_tipologia"`
	MultiplicadorPadrao    float64  `json:"multiplicador_padrao"`

	Linhas []CostLine `json:"linhas"`

	SubtotalDisciplinas  Centavos `json:"subtotal_disciplinas"`
	SubtotalSobreposicao Centavos `json:"subtotal_sobreposicao"`
	TaxaCoordenacao      Centavos `json:"taxa_coordenacao"`

	AjusteUrgencia Centavos `json:"ajuste_urgencia"`
	Margem         Centavos `json:"margem"`

	ValorTotal Centavos `json:"valor_total"`
	ValorPorM2 Centavos `json:"valor_por_m2"`
}

// Reconciled reports whether the breakdown invariant holds exactly.
func (b CostBreakdown) Reconciled() bool {
	return b.SubtotalDisciplinas+b.SubtotalSobreposicao+b.TaxaCoordenacao == b.ValorTotal
}

// LinhaPorDisciplina returns the line item for a discipline ID, if present.
func (b CostBreakdown) LinhaPorDisciplina(id string) (CostLine, bool) {
	for _, l := range b.Linhas {
		if l.DisciplinaID == id {
			return l, true
		}
	}
	return CostLine{}, false
}
