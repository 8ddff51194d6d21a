package catalog

import (
	"errors"
	"strings"
	"testing"

	"atelie_arq/internal/domain/entities"
)

func validCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadDefault()
	if err != nil {
		t.Fatalf("loading embedded catalog: %v", err)
	}
	return c
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Catalog)
		trecho string
	}{
		{
			name:   "sem versao",
			mutate: func(c *Catalog) { c.Versao = 0 },
			trecho: "versao",
		},
		{
			name:   "sem disciplinas",
			mutate: func(c *Catalog) { c.Disciplinas = nil },
			trecho: "disciplinas",
		},
		{
			name:   "percentual das fases nao soma 100",
			mutate: func(c *Catalog) { c.Disciplinas[0].Fases[0].PercentualProjeto = 5 },
			trecho: "percentual_projeto",
		},
		{
			name:   "pesos base nao somam 1",
			mutate: func(c *Catalog) { c.Disciplinas[0].PesoBase = 0.50 },
			trecho: "pesos base",
		},
		{
			name:   "sobreposicao com peso base",
			mutate: func(c *Catalog) { c.Disciplinas[3].PesoBase = 0.1 },
			trecho: "peso_base",
		},
		{
			name:   "id de fase duplicado",
			mutate: func(c *Catalog) { c.Disciplinas[1].Fases[0].ID = "arq-lev" },
			trecho: "duplicado",
		},
		{
			name:   "dependencia desconhecida",
			mutate: func(c *Catalog) { c.Disciplinas[0].Fases[1].Dependencias = []string{"fase-fantasma"} },
			trecho: "dependencia desconhecida",
		},
		{
			name: "ciclo de dependencias",
			mutate: func(c *Catalog) {
				// arq-lev depending on arq-as closes the architecture chain
				// into a loop.
				c.Disciplinas[0].Fases[0].Dependencias = []string{"arq-as"}
			},
			trecho: "ciclo",
		},
		{
			name:   "duracao invalida",
			mutate: func(c *Catalog) { c.Disciplinas[0].Fases[0].DuracaoDias = 0 },
			trecho: "duracao",
		},
		{
			name: "funcao desconhecida em atividade",
			mutate: func(c *Catalog) {
				c.Disciplinas[0].Fases[0].Atividades[0].Responsavel = "mestre-de-obras"
			},
			trecho: "funcao desconhecida",
		},
		{
			name: "custo de referencia ausente",
			mutate: func(c *Catalog) {
				delete(c.CustosReferencia["sudeste"], entities.TipologiaResidencial)
			},
			trecho: "custo de referencia",
		},
		{
			name:   "multiplicador de padrao ausente",
			mutate: func(c *Catalog) { delete(c.MultiplicadoresPadrao, entities.PadraoPremium) },
			trecho: "multiplicadores_padrao",
		},
		{
			name:   "acrescimo de urgencia ausente",
			mutate: func(c *Catalog) { delete(c.AcrescimosUrgencia, entities.UrgenciaFlexivel) },
			trecho: "acrescimos_urgencia",
		},
		{
			name:   "sobreposicao nao declarada",
			mutate: func(c *Catalog) { c.Sobreposicoes["luminotecnica"] = 10 },
			trecho: "sobreposicoes",
		},
		{
			name:   "percentual de sobreposicao invalido",
			mutate: func(c *Catalog) { c.Sobreposicoes["interiores"] = 0 },
			trecho: "sobreposicoes",
		},
		{
			name:   "entrada fora do intervalo",
			mutate: func(c *Catalog) { c.Cronograma.EntradaPercentual = 100 },
			trecho: "entrada",
		},
		{
			name:   "codigo de fase sem marco",
			mutate: func(c *Catalog) { c.Cronograma.Marcos = c.Cronograma.Marcos[:4] },
			trecho: "sem marco",
		},
		{
			name: "codigo de fase em dois marcos",
			mutate: func(c *Catalog) {
				c.Cronograma.Marcos[1].Fases = append(c.Cronograma.Marcos[1].Fases, entities.FaseProjetoBasico)
			},
			trecho: "mais de um marco",
		},
		{
			name: "dependencia entregue depois",
			mutate: func(c *Catalog) {
				marcos := c.Cronograma.Marcos
				marcos[3], marcos[4] = marcos[4], marcos[3]
			},
			trecho: "marco posterior",
		},
		{
			name:   "validade nao positiva",
			mutate: func(c *Catalog) { c.Politica.ValidadeDias = 0 },
			trecho: "validade",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCatalog(t)
			tc.mutate(c)

			err := c.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var cErr *entities.ConfigurationError
			if !errors.As(err, &cErr) {
				t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tc.trecho) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.trecho)
			}
		})
	}

	t.Run("catalogo embutido valido", func(t *testing.T) {
		if err := validCatalog(t).Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
