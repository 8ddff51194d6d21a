package entities

// ScheduleStage is one commercial milestone of the cronograma.
//
// Invariants (established by the generator):
//   - Stages are ordered by the dependency-resolved phase sequence.
//   - Percentual across all stages sums to 100.00 (two decimals).
//   - Valor across all stages sums to the breakdown's ValorTotal exactly.
type ScheduleStage struct {
	Nome        string   `json:"nome"`
	Percentual  float64  `json:"percentual"`
	Valor       Centavos `json:"valor"`
	Disciplinas []string `json:"disciplinas"`
}
