package engine

import (
	"reflect"
	"testing"

	"atelie_arq/internal/domain/entities"
)

func TestGenerateSchedule_ArquiteturaApenas(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	b, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	estagios, err := e.GenerateSchedule(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estagios) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(estagios))
	}

	// Entrada takes 20% of the total; the architecture phase percentuals
	// (10+15, 25, 40, 10) split the remaining 80%.
	want := []entities.ScheduleStage{
		{Nome: "Assinatura de Contrato", Percentual: 20, Valor: 118800, Disciplinas: []string{}},
		{Nome: "Entrega do Levantamento e Estudo Preliminar", Percentual: 20, Valor: 118800, Disciplinas: []string{"arquitetura"}},
		{Nome: "Entrega do Projeto Básico", Percentual: 20, Valor: 118800, Disciplinas: []string{"arquitetura"}},
		{Nome: "Entrega do Projeto Executivo", Percentual: 32, Valor: 190080, Disciplinas: []string{"arquitetura"}},
		{Nome: "Entrega Final e Assistência à Obra", Percentual: 8, Valor: 47520, Disciplinas: []string{"arquitetura"}},
	}
	if !reflect.DeepEqual(estagios, want) {
		t.Fatalf("stages mismatch:\n got %+v\nwant %+v", estagios, want)
	}
}

func TestGenerateSchedule_Invariantes(t *testing.T) {
	e := testEngine(t)

	// An intentionally awkward mix: every discipline, urgency surcharge and
	// an odd margin, so rounding remainders show up everywhere.
	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"arquitetura", "estrutural", "instalacoes", "interiores", "decoracao", "paisagismo"}
	p.Urgencia = entities.UrgenciaUrgente
	p.MargemPercentual = 17.5

	base, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.ApplyOverlay(base, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	estagios, err := e.GenerateSchedule(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var somaValores entities.Centavos
	somaBps := 0
	for _, s := range estagios {
		if s.Valor <= 0 {
			t.Fatalf("stage %q has non-positive value %d", s.Nome, s.Valor)
		}
		somaValores += s.Valor
		somaBps += int(s.Percentual*100 + 0.5)
	}
	if somaValores != b.ValorTotal {
		t.Fatalf("stage values sum %d, want %d", somaValores, b.ValorTotal)
	}
	if somaBps != 10000 {
		t.Fatalf("stage percentages sum %d bps, want 10000", somaBps)
	}

	entrada := estagios[0]
	if entrada.Nome != "Assinatura de Contrato" || len(entrada.Disciplinas) != 0 {
		t.Fatalf("unexpected entrada stage: %+v", entrada)
	}

	// Overlay disciplines deliver work too: interiores appears in the
	// executive-project milestone alongside the priced disciplines.
	var executivo entities.ScheduleStage
	for _, s := range estagios {
		if s.Nome == "Entrega do Projeto Executivo" {
			executivo = s
		}
	}
	achou := false
	for _, d := range executivo.Disciplinas {
		if d == "interiores" {
			achou = true
		}
	}
	if !achou {
		t.Fatalf("expected interiores in executive milestone, got %v", executivo.Disciplinas)
	}
}

func TestGenerateSchedule_DisciplinasEmOrdemDeCatalogo(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"instalacoes", "arquitetura", "estrutural"}

	b, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	estagios, err := e.GenerateSchedule(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range estagios {
		if s.Nome != "Entrega do Projeto Executivo" {
			continue
		}
		want := []string{"arquitetura", "estrutural", "instalacoes"}
		if !reflect.DeepEqual(s.Disciplinas, want) {
			t.Fatalf("disciplinas = %v, want %v", s.Disciplinas, want)
		}
	}
}
