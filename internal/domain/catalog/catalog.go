// Package catalog loads and validates the versioned discipline catalog:
// the static domain data (disciplines, phases, activities, multiplier and
// reference-cost tables, cronograma policy) the derivation engine runs on.
//
// The catalog is loaded once at process start and injected read-only into
// the engine. Every business threshold lives here, not in calculator code.
package catalog

import (
	"atelie_arq/internal/domain/entities"
)

// Marco declares one commercial milestone of the cronograma policy and the
// phase codes it closes. Declaration order is the delivery order.
type Marco struct {
	Nome  string               `yaml:"nome"`
	Fases []entities.FaseCodigo `yaml:"fases"`
}

// CronogramaPolicy drives the schedule generator.
//
// EntradaPercentual is the share of the grand total collected at contract
// signing; the remainder is distributed across the phase milestones.
type CronogramaPolicy struct {
	EntradaPercentual float64 `yaml:"entrada_percentual"`
	Marcos            []Marco `yaml:"marcos"`
}

// Politica carries the fixed commercial-policy constants of the proposal.
type Politica struct {
	ValidadeDias        int      `yaml:"validade_dias"`
	Diferenciais        []string `yaml:"diferenciais"`
	CondicoesComerciais []string `yaml:"condicoes_comerciais"`
}

// Catalog is the full versioned configuration artifact.
//
// Tables:
//   - CustosReferencia: R$/m² design-fee reference by region and typology.
//   - MultiplicadoresTipologia / MultiplicadoresPadrao: scalar multipliers.
//   - AcrescimosUrgencia: percentage surcharge per delivery regime.
//   - Sobreposicoes: overlay disciplines priced as percent of the
//     architecture subtotal.
type Catalog struct {
	Versao      int                   `yaml:"versao"`
	Disciplinas []entities.Disciplina `yaml:"disciplinas"`

	CustosReferencia map[string]map[entities.Tipologia]float64 `yaml:"custos_referencia"`

	MultiplicadoresTipologia map[entities.Tipologia]float64 `yaml:"multiplicadores_tipologia"`
	MultiplicadoresPadrao    map[entities.Padrao]float64    `yaml:"multiplicadores_padrao"`
	AcrescimosUrgencia       map[entities.Urgencia]float64  `yaml:"acrescimos_urgencia"`

	Sobreposicoes             map[string]float64 `yaml:"sobreposicoes"`
	TaxaCoordenacaoPercentual float64            `yaml:"taxa_coordenacao_percentual"`

	Cronograma CronogramaPolicy `yaml:"cronograma"`
	Politica   Politica         `yaml:"politica"`
}

// DisciplinaPorID returns the discipline with the given ID, if declared.
func (c *Catalog) DisciplinaPorID(id string) (entities.Disciplina, bool) {
	for _, d := range c.Disciplinas {
		if d.ID == id {
			return d, true
		}
	}
	return entities.Disciplina{}, false
}

// IsSobreposicao reports whether the discipline is an overlay discipline.
func (c *Catalog) IsSobreposicao(id string) bool {
	_, ok := c.Sobreposicoes[id]
	return ok
}

// CustoReferencia returns the R$/m² reference in centavos for a
// region+typology pair.
func (c *Catalog) CustoReferencia(regiao string, tipologia entities.Tipologia) (entities.Centavos, bool) {
	porTipologia, ok := c.CustosReferencia[regiao]
	if !ok {
		return 0, false
	}
	reais, ok := porTipologia[tipologia]
	if !ok {
		return 0, false
	}
	return entities.Centavos(reais*100 + 0.5), true
}

// DisciplinasBase returns the priced (non-overlay) disciplines in
// declaration order.
func (c *Catalog) DisciplinasBase() []entities.Disciplina {
	base := make([]entities.Disciplina, 0, len(c.Disciplinas))
	for _, d := range c.Disciplinas {
		if !c.IsSobreposicao(d.ID) {
			base = append(base, d)
		}
	}
	return base
}
