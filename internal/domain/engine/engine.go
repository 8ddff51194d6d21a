// Package engine implements the budget & schedule derivation core: pure,
// synchronous transformations from project parameters plus the immutable
// catalog into a cost breakdown, cronograma, rule report and proposal.
//
// The engine holds no state between invocations; concurrent calls are fully
// independent. All monetary math happens in integer centavos and every
// calculator ends with a single largest-remainder reconciliation, so the
// breakdown and cronograma invariants hold exactly.
package engine

import (
	"atelie_arq/internal/domain/catalog"
	"atelie_arq/internal/domain/entities"
)

// DisciplinaArquitetura anchors overlay pricing: overlay disciplines are
// charged as a percentage of this discipline's subtotal.
const DisciplinaArquitetura = "arquitetura"

// Engine runs the derivation pipeline against one read-only catalog.
type Engine struct {
	cat *catalog.Catalog
}

// NewEngine builds an engine over a validated catalog. The catalog is
// injected, never ambient, so tests can substitute fixture catalogs.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat}
}

// Bundle groups the output of one full pipeline run.
type Bundle struct {
	Parametros entities.ProjectParameters `json:"parametros"`
	Orcamento  entities.CostBreakdown     `json:"orcamento"`
	Cronograma []entities.ScheduleStage   `json:"cronograma"`
	Relatorio  entities.RuleReport        `json:"relatorio"`
	Proposta   entities.Proposal          `json:"proposta"`
}

// GenerateProposal runs the full pipeline: cost composition, overlay,
// cronograma, rules and assembly. Deterministic: identical inputs yield
// identical output.
func (e *Engine) GenerateProposal(p entities.ProjectParameters) (Bundle, error) {
	base, err := e.ComputeCost(p)
	if err != nil {
		return Bundle{}, err
	}
	orcamento, err := e.ApplyOverlay(base, p)
	if err != nil {
		return Bundle{}, err
	}
	cronograma, err := e.GenerateSchedule(orcamento)
	if err != nil {
		return Bundle{}, err
	}
	relatorio := e.Evaluate(p, orcamento)
	proposta := e.Assemble(p, orcamento, cronograma, relatorio)

	return Bundle{
		Parametros: p,
		Orcamento:  orcamento,
		Cronograma: cronograma,
		Relatorio:  relatorio,
		Proposta:   proposta,
	}, nil
}
