package catalog

import (
	"fmt"
	"math"

	"atelie_arq/internal/domain/entities"
)

const (
	percentualTolerance = 0.01
	pesoBaseTolerance   = 0.0001
)

var faseCodigos = []entities.FaseCodigo{
	entities.FaseLevantamento,
	entities.FaseEstudoPreliminar,
	entities.FaseProjetoBasico,
	entities.FaseProjetoExecutivo,
	entities.FaseAssistencia,
}

// Validate runs every load-time consistency check. Any violation is a
// ConfigurationError naming the offending field; a catalog that fails here
// must never reach the engine.
//
// Checks, in order: discipline/phase identity, role and phase-code
// enumerations, per-discipline percentual sums, base-weight sum, dependency
// DAG, multiplier and reference-cost table completeness, overlay and
// cronograma policy consistency.
func (c *Catalog) Validate() error {
	if c.Versao < 1 {
		return entities.NewConfigurationError("versao", "catalogo sem versao")
	}
	if len(c.Disciplinas) == 0 {
		return entities.NewConfigurationError("disciplinas", "catalogo sem disciplinas")
	}

	if err := c.validateDisciplinas(); err != nil {
		return err
	}
	if err := c.validateDependencias(); err != nil {
		return err
	}
	if err := c.validateTabelas(); err != nil {
		return err
	}
	if err := c.validateSobreposicoes(); err != nil {
		return err
	}
	if err := c.validateCronograma(); err != nil {
		return err
	}
	if c.Politica.ValidadeDias <= 0 {
		return entities.NewConfigurationError("politica.validade_dias", "validade da proposta deve ser positiva")
	}
	return nil
}

func (c *Catalog) validateDisciplinas() error {
	vistos := make(map[string]bool, len(c.Disciplinas))
	fasesVistas := make(map[string]bool)
	somaPesos := 0.0

	for _, d := range c.Disciplinas {
		if d.ID == "" {
			return entities.NewConfigurationError("disciplinas", "disciplina sem id")
		}
		if vistos[d.ID] {
			return entities.NewConfigurationError("disciplinas."+d.ID, "id de disciplina duplicado")
		}
		vistos[d.ID] = true

		if len(d.Fases) == 0 {
			return entities.NewConfigurationError("disciplinas."+d.ID, "disciplina sem fases")
		}
		somaPesos += d.PesoBase

		somaPercentual := 0.0
		for _, f := range d.Fases {
			campo := fmt.Sprintf("disciplinas.%s.fases.%s", d.ID, f.ID)
			if f.ID == "" {
				return entities.NewConfigurationError("disciplinas."+d.ID+".fases", "fase sem id")
			}
			if fasesVistas[f.ID] {
				return entities.NewConfigurationError(campo, "id de fase duplicado")
			}
			fasesVistas[f.ID] = true

			if !knownFaseCodigo(f.Codigo) {
				return entities.NewConfigurationError(campo+".codigo", fmt.Sprintf("codigo de fase desconhecido: %q", f.Codigo))
			}
			if f.DuracaoDias <= 0 {
				return entities.NewConfigurationError(campo+".duracao_dias", "duracao deve ser positiva")
			}
			if f.PercentualProjeto <= 0 || f.PercentualProjeto > 100 {
				return entities.NewConfigurationError(campo+".percentual_projeto", "percentual fora do intervalo (0,100]")
			}
			somaPercentual += f.PercentualProjeto

			for _, a := range f.Atividades {
				if !entities.KnownFuncao(a.Responsavel) {
					return entities.NewConfigurationError(campo+".atividades."+a.ID, fmt.Sprintf("funcao desconhecida: %q", a.Responsavel))
				}
				if a.HorasEstimadas <= 0 {
					return entities.NewConfigurationError(campo+".atividades."+a.ID, "horas estimadas devem ser positivas")
				}
			}
		}

		if math.Abs(somaPercentual-100) > percentualTolerance {
			return entities.NewConfigurationError(
				"disciplinas."+d.ID+".fases",
				fmt.Sprintf("percentual_projeto soma %.2f, esperado 100", somaPercentual),
			)
		}

		if c.IsSobreposicao(d.ID) && d.PesoBase != 0 {
			return entities.NewConfigurationError("disciplinas."+d.ID+".peso_base", "disciplina de sobreposicao deve ter peso_base 0")
		}
	}

	if math.Abs(somaPesos-1.0) > pesoBaseTolerance {
		return entities.NewConfigurationError("disciplinas", fmt.Sprintf("pesos base somam %.4f, esperado 1.0", somaPesos))
	}
	return nil
}

// validateDependencias checks phase references and rejects dependency
// cycles via Kahn's algorithm over the global phase graph.
func (c *Catalog) validateDependencias() error {
	grau := make(map[string]int)
	dependentes := make(map[string][]string)
	todas := make(map[string]bool)

	for _, d := range c.Disciplinas {
		for _, f := range d.Fases {
			todas[f.ID] = true
		}
	}
	for _, d := range c.Disciplinas {
		for _, f := range d.Fases {
			for _, dep := range f.Dependencias {
				if !todas[dep] {
					return entities.NewConfigurationError(
						fmt.Sprintf("disciplinas.%s.fases.%s.dependencias", d.ID, f.ID),
						fmt.Sprintf("dependencia desconhecida: %q", dep),
					)
				}
				grau[f.ID]++
				dependentes[dep] = append(dependentes[dep], f.ID)
			}
		}
	}

	fila := make([]string, 0, len(todas))
	for _, d := range c.Disciplinas {
		for _, f := range d.Fases {
			if grau[f.ID] == 0 {
				fila = append(fila, f.ID)
			}
		}
	}

	resolvidas := 0
	for len(fila) > 0 {
		id := fila[0]
		fila = fila[1:]
		resolvidas++
		for _, dep := range dependentes[id] {
			grau[dep]--
			if grau[dep] == 0 {
				fila = append(fila, dep)
			}
		}
	}
	if resolvidas != len(todas) {
		return entities.NewConfigurationError("disciplinas.fases.dependencias", "ciclo de dependencias entre fases")
	}
	return nil
}

func (c *Catalog) validateTabelas() error {
	if len(c.CustosReferencia) == 0 {
		return entities.NewConfigurationError("custos_referencia", "tabela de custos de referencia vazia")
	}
	tipologias := []entities.Tipologia{
		entities.TipologiaResidencial,
		entities.TipologiaComercial,
		entities.TipologiaIndustrial,
		entities.TipologiaInstitucional,
	}
	for regiao, porTipologia := range c.CustosReferencia {
		for _, t := range tipologias {
			custo, ok := porTipologia[t]
			if !ok || custo <= 0 {
				return entities.NewConfigurationError(
					fmt.Sprintf("custos_referencia.%s.%s", regiao, t),
					"custo de referencia ausente ou invalido",
				)
			}
		}
	}

	for _, t := range tipologias {
		if m, ok := c.MultiplicadoresTipologia[t]; !ok || m <= 0 {
			return entities.NewConfigurationError("multiplicadores_tipologia."+string(t), "multiplicador ausente ou invalido")
		}
	}
	for _, p := range []entities.Padrao{entities.PadraoEconomico, entities.PadraoMedio, entities.PadraoAlto, entities.PadraoPremium} {
		if m, ok := c.MultiplicadoresPadrao[p]; !ok || m <= 0 {
			return entities.NewConfigurationError("multiplicadores_padrao."+string(p), "multiplicador ausente ou invalido")
		}
	}
	for _, u := range []entities.Urgencia{entities.UrgenciaNormal, entities.UrgenciaUrgente, entities.UrgenciaFlexivel} {
		if _, ok := c.AcrescimosUrgencia[u]; !ok {
			return entities.NewConfigurationError("acrescimos_urgencia."+string(u), "acrescimo de urgencia ausente")
		}
	}
	return nil
}

func (c *Catalog) validateSobreposicoes() error {
	for id, pct := range c.Sobreposicoes {
		if _, ok := c.DisciplinaPorID(id); !ok {
			return entities.NewConfigurationError("sobreposicoes."+id, "disciplina de sobreposicao nao declarada no catalogo")
		}
		if pct <= 0 || pct >= 100 {
			return entities.NewConfigurationError("sobreposicoes."+id, "percentual fora do intervalo (0,100)")
		}
	}
	if len(c.Sobreposicoes) > 0 && (c.TaxaCoordenacaoPercentual <= 0 || c.TaxaCoordenacaoPercentual >= 100) {
		return entities.NewConfigurationError("taxa_coordenacao_percentual", "taxa de coordenacao fora do intervalo (0,100)")
	}
	return nil
}

// validateCronograma checks that every phase code in use maps to exactly one
// milestone and that milestone order respects phase dependencies.
func (c *Catalog) validateCronograma() error {
	if c.Cronograma.EntradaPercentual < 0 || c.Cronograma.EntradaPercentual >= 100 {
		return entities.NewConfigurationError("cronograma.entrada_percentual", "entrada fora do intervalo [0,100)")
	}
	if len(c.Cronograma.Marcos) == 0 {
		return entities.NewConfigurationError("cronograma.marcos", "cronograma sem marcos")
	}

	marcoPorCodigo := make(map[entities.FaseCodigo]int)
	for i, m := range c.Cronograma.Marcos {
		if m.Nome == "" {
			return entities.NewConfigurationError(fmt.Sprintf("cronograma.marcos[%d]", i), "marco sem nome")
		}
		for _, codigo := range m.Fases {
			if !knownFaseCodigo(codigo) {
				return entities.NewConfigurationError(m.Nome, fmt.Sprintf("codigo de fase desconhecido no marco: %q", codigo))
			}
			if _, ok := marcoPorCodigo[codigo]; ok {
				return entities.NewConfigurationError(m.Nome, fmt.Sprintf("codigo de fase em mais de um marco: %q", codigo))
			}
			marcoPorCodigo[codigo] = i
		}
	}

	fasePorID := make(map[string]entities.Fase)
	for _, d := range c.Disciplinas {
		for _, f := range d.Fases {
			fasePorID[f.ID] = f
			if _, ok := marcoPorCodigo[f.Codigo]; !ok {
				return entities.NewConfigurationError(
					"cronograma.marcos",
					fmt.Sprintf("codigo de fase %q (fase %s) sem marco no cronograma", f.Codigo, f.ID),
				)
			}
		}
	}

	// A phase can never be delivered before its dependencies' milestones.
	for _, d := range c.Disciplinas {
		for _, f := range d.Fases {
			for _, dep := range f.Dependencias {
				if marcoPorCodigo[fasePorID[dep].Codigo] > marcoPorCodigo[f.Codigo] {
					return entities.NewConfigurationError(
						fmt.Sprintf("disciplinas.%s.fases.%s", d.ID, f.ID),
						fmt.Sprintf("dependencia %q entregue em marco posterior", dep),
					)
				}
			}
		}
	}
	return nil
}

func knownFaseCodigo(c entities.FaseCodigo) bool {
	for _, known := range faseCodigos {
		if c == known {
			return true
		}
	}
	return false
}
