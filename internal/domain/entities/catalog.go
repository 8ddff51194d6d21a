package entities

// Funcao is the closed set of roles that execute catalog activities.
//
// Domain notes:
//   - Hour estimates in the catalog are always attributed to one of these roles.
//   - The set is closed: catalog validation rejects anything else.

type Funcao string

const (
	FuncaoResponsavelTecnico Funcao = "responsavel-tecnico"
	FuncaoEngenheiro         Funcao = "engenheiro"
	FuncaoCadista            Funcao = "cadista"
	FuncaoEstagiario         Funcao = "estagiario"
)

// KnownFuncao reports whether f belongs to the closed role enumeration.
func KnownFuncao(f Funcao) bool {
	switch f {
	case FuncaoResponsavelTecnico, FuncaoEngenheiro, FuncaoCadista, FuncaoEstagiario:
		return true
	}
	return false
}

// FaseCodigo identifies a design-lifecycle stage within a discipline.

type FaseCodigo string

const (
	FaseLevantamento     FaseCodigo = "levantamento"
	FaseEstudoPreliminar FaseCodigo = "estudo-preliminar"
	FaseProjetoBasico    FaseCodigo = "projeto-basico"
	FaseProjetoExecutivo FaseCodigo = "projeto-executivo"
	FaseAssistencia      FaseCodigo = "assistencia"
)

// Atividade is a leaf catalog node: one unit of work inside a phase.
// Immutable once loaded from the catalog artifact.
type Atividade struct {
	ID             string   `json:"id" yaml:"id"`
	Descricao      string   `json:"descricao" yaml:"descricao"`
	Responsavel    Funcao   `json:"responsavel" yaml:"responsavel"`
	HorasEstimadas float64  `json:"horas_estimadas" yaml:"horas_estimadas"`
	Produtos       []string `json:"produtos" yaml:"produtos"`
}

// Fase is one design stage of a discipline.
//
// Invariants (enforced at catalog load, not here):
//   - PercentualProjeto across a discipline's phases sums to 100 (±0.01).
//   - Dependencias reference existing phase IDs and form a DAG.
type Fase struct {
	ID                string      `json:"id" yaml:"id"`
	Codigo            FaseCodigo  `json:"codigo" yaml:"codigo"`
	DuracaoDias       int         `json:"duracao_dias" yaml:"duracao_dias"`
	Dependencias      []string    `json:"dependencias" yaml:"dependencias"`
	PercentualProjeto float64     `json:"percentual_projeto" yaml:"percentual_projeto"`
	Atividades        []Atividade `json:"atividades" yaml:"atividades"`
}

// HorasPorFuncao aggregates the phase's activity hours by role.
func (f Fase) HorasPorFuncao() map[Funcao]float64 {
	horas := make(map[Funcao]float64, 4)
	for _, a := range f.Atividades {
		horas[a.Responsavel] += a.HorasEstimadas
	}
	return horas
}

// Disciplina is an engineering specialty with its ordered phases.
//
// PesoBase is the discipline's fixed share of the project base value.
// Overlay disciplines (interiores, decoracao, paisagismo) are priced as a
// percentage of the architecture subtotal instead and carry PesoBase = 0.
type Disciplina struct {
	ID                string  `json:"id" yaml:"id"`
	Nome              string  `json:"nome" yaml:"nome"`
	Responsavel       string  `json:"responsavel" yaml:"responsavel"`
	CategoriaRegistro string  `json:"categoria_registro" yaml:"categoria_registro"`
	PesoBase          float64 `json:"peso_base" yaml:"peso_base"`
	Fases             []Fase  `json:"fases" yaml:"fases"`
}

// FasePorID returns the phase with the given ID, if declared.
func (d Disciplina) FasePorID(id string) (Fase, bool) {
	for _, f := range d.Fases {
		if f.ID == id {
			return f, true
		}
	}
	return Fase{}, false
}
