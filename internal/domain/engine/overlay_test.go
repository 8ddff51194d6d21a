package engine

import (
	"errors"
	"reflect"
	"testing"

	"atelie_arq/internal/domain/entities"
)

func TestApplyOverlay_InterioresEPaisagismo(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"arquitetura", "interiores", "paisagismo"}

	base, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := e.ApplyOverlay(base, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// interiores 12% and paisagismo 8% of the R$5.940,00 architecture line,
	// coordination 5% on top of everything.
	interiores, ok := b.LinhaPorDisciplina("interiores")
	if !ok || interiores.Valor != 71280 {
		t.Fatalf("interiores = %+v, want 71280", interiores)
	}
	if interiores.Tipo != entities.CostLineSobreposicao {
		t.Fatalf("interiores tipo = %s, want sobreposicao", interiores.Tipo)
	}
	paisagismo, ok := b.LinhaPorDisciplina("paisagismo")
	if !ok || paisagismo.Valor != 47520 {
		t.Fatalf("paisagismo = %+v, want 47520", paisagismo)
	}

	if b.SubtotalSobreposicao != 118800 {
		t.Fatalf("subtotal sobreposicao = %d, want 118800", b.SubtotalSobreposicao)
	}
	if b.TaxaCoordenacao != 35640 {
		t.Fatalf("taxa coordenacao = %d, want 35640", b.TaxaCoordenacao)
	}
	if b.ValorTotal != 748440 {
		t.Fatalf("valor total = %d, want 748440", b.ValorTotal)
	}
	if b.ValorPorM2 != 6804 {
		t.Fatalf("valor por m2 = %d, want 6804", b.ValorPorM2)
	}
	if !b.Reconciled() {
		t.Fatalf("breakdown does not reconcile: %+v", b)
	}

	ultima := b.Linhas[len(b.Linhas)-1]
	if ultima.Tipo != entities.CostLineCoordenacao || ultima.DisciplinaID != "" {
		t.Fatalf("expected coordination as last line, got %+v", ultima)
	}
}

func TestApplyOverlay_SemSobreposicao(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	base, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := e.ApplyOverlay(base, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(b, base) {
		t.Fatalf("expected passthrough, got %+v", b)
	}
}

func TestApplyOverlay_ExigeArquitetura(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"estrutural", "interiores"}

	base, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = e.ApplyOverlay(base, p)
	var vErr *entities.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestApplyOverlay_OrdemDeCatalogo(t *testing.T) {
	e := testEngine(t)

	p := paramsResidencial()
	p.DisciplinasSelecionadas = []string{"paisagismo", "decoracao", "arquitetura", "interiores"}

	base, err := e.ComputeCost(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.ApplyOverlay(base, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var ids []string
	for _, l := range b.Linhas {
		if l.Tipo == entities.CostLineSobreposicao {
			ids = append(ids, l.DisciplinaID)
		}
	}
	want := []string{"interiores", "decoracao", "paisagismo"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("overlay order = %v, want %v", ids, want)
	}
	if !b.Reconciled() {
		t.Fatalf("breakdown does not reconcile")
	}
}
