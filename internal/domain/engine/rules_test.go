package engine

import (
	"strings"
	"testing"

	"atelie_arq/internal/domain/entities"
)

func avaliar(t *testing.T, e *Engine, p entities.ProjectParameters) entities.RuleReport {
	t.Helper()
	b, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return e.Evaluate(p, b)
}

func temAlerta(relatorio entities.RuleReport, trecho string) bool {
	for _, a := range relatorio.Alertas {
		if strings.Contains(a.Mensagem, trecho) {
			return true
		}
	}
	return false
}

func temSugestao(relatorio entities.RuleReport, trecho string) bool {
	for _, s := range relatorio.Sugestoes {
		if strings.Contains(s.Mensagem, trecho) {
			return true
		}
	}
	return false
}

func TestEvaluate_MargemInsuficienteComUrgencia(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.Urgencia = entities.UrgenciaUrgente
	p.MargemPercentual = 5

	relatorio := avaliar(t, e, p)
	if !temAlerta(relatorio, "insuficiente") {
		t.Fatalf("expected insufficient-margin alert, got %+v", relatorio.Alertas)
	}

	p.MargemPercentual = 15
	relatorio = avaliar(t, e, p)
	if temAlerta(relatorio, "insuficiente") {
		t.Fatalf("did not expect insufficient-margin alert with 15%% margin")
	}
}

func TestEvaluate_AreaGrandeSemEstrutural(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.AreaTotal = 620

	relatorio := avaliar(t, e, p)
	achou := false
	for _, a := range relatorio.Alertas {
		if strings.Contains(a.Mensagem, "estrutural") {
			achou = true
			if a.Severidade != entities.AlertaCritico {
				t.Fatalf("expected critico, got %s", a.Severidade)
			}
		}
	}
	if !achou {
		t.Fatalf("expected structural alert, got %+v", relatorio.Alertas)
	}

	p.DisciplinasSelecionadas = []string{"arquitetura", "estrutural"}
	relatorio = avaliar(t, e, p)
	if temAlerta(relatorio, "estrutural") {
		t.Fatalf("did not expect structural alert with estrutural selected")
	}
}

func TestEvaluate_IndustrialSemInstalacoes(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.Tipologia = entities.TipologiaIndustrial

	relatorio := avaliar(t, e, p)
	if !temAlerta(relatorio, "instalações") {
		t.Fatalf("expected installations alert, got %+v", relatorio.Alertas)
	}
}

func TestEvaluate_ValorM2AbaixoReferencia(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	b := entities.CostBreakdown{ValorPorM2: 9000}

	relatorio := e.Evaluate(p, b)
	if !temAlerta(relatorio, "referência regional") {
		t.Fatalf("expected below-reference alert, got %+v", relatorio.Alertas)
	}
}

func TestEvaluate_PrazoInferiorAoEstimado(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.PrazoDesejadoDias = 60

	relatorio := avaliar(t, e, p)
	if !temAlerta(relatorio, "107 dias") {
		t.Fatalf("expected deadline alert mentioning 107 dias, got %+v", relatorio.Alertas)
	}

	p.PrazoDesejadoDias = 180
	relatorio = avaliar(t, e, p)
	if temAlerta(relatorio, "Prazo desejado") {
		t.Fatalf("did not expect deadline alert with comfortable deadline")
	}
}

func TestEvaluate_Sugestoes(t *testing.T) {
	e := testEngine(t)

	t.Run("padrao alto sem interiores", func(t *testing.T) {
		p := paramsResidencial()
		p.Padrao = entities.PadraoAlto

		relatorio := avaliar(t, e, p)
		if !temSugestao(relatorio, "interiores") {
			t.Fatalf("expected interiores suggestion, got %+v", relatorio.Sugestoes)
		}
	})

	t.Run("area grande sugere bim", func(t *testing.T) {
		p := paramsResidencial()
		p.AreaTotal = 1500
		p.DisciplinasSelecionadas = []string{"arquitetura", "estrutural"}

		relatorio := avaliar(t, e, p)
		if !temSugestao(relatorio, "BIM") {
			t.Fatalf("expected BIM suggestion, got %+v", relatorio.Sugestoes)
		}
	})

	t.Run("margem alta", func(t *testing.T) {
		p := paramsResidencial()
		p.MargemPercentual = 45

		relatorio := avaliar(t, e, p)
		if !temSugestao(relatorio, "competitividade") {
			t.Fatalf("expected competitiveness suggestion, got %+v", relatorio.Sugestoes)
		}
	})
}

func TestEvaluate_SemCondicoes(t *testing.T) {
	e := testEngine(t)

	// Full base scope at the regional reference price triggers nothing.
	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"arquitetura", "estrutural", "instalacoes"}

	relatorio := avaliar(t, e, p)
	if len(relatorio.Alertas) != 0 {
		t.Fatalf("expected no alerts, got %+v", relatorio.Alertas)
	}
	if len(relatorio.Sugestoes) != 0 {
		t.Fatalf("expected no suggestions, got %+v", relatorio.Sugestoes)
	}
	if relatorio.Alertas == nil || relatorio.Sugestoes == nil {
		t.Fatalf("report slices must be non-nil for serialization")
	}
}

func TestAvaliarComRecuperacao(t *testing.T) {
	e := testEngine(t)

	r := regra{
		id: "explode",
		avaliar: func(*Engine, entities.ProjectParameters, entities.CostBreakdown) (*entities.Alert, *entities.Suggestion) {
			panic("boom")
		},
	}

	alerta, sugestao := avaliarComRecuperacao(e, r, paramsResidencial(), entities.CostBreakdown{})
	if alerta != nil || sugestao != nil {
		t.Fatalf("expected nil results after panic, got %v / %v", alerta, sugestao)
	}
}

func TestDuracaoEstimadaDias(t *testing.T) {
	e := testEngine(t)

	cases := []struct {
		name        string
		disciplinas []string
		want        int
	}{
		{name: "arquitetura", disciplinas: []string{"arquitetura"}, want: 107},
		{name: "todas as bases", disciplinas: []string{"arquitetura", "estrutural", "instalacoes"}, want: 125},
		{name: "nenhuma", disciplinas: nil, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := paramsResidencial()
			p.DisciplinasSelecionadas = tc.disciplinas
			if got := e.duracaoEstimadaDias(p); got != tc.want {
				t.Fatalf("duracao = %d, want %d", got, tc.want)
			}
		})
	}
}
