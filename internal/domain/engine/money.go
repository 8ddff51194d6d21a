package engine

import (
	"math"

	"atelie_arq/internal/domain/entities"
)

// arredondar rounds a raw monetary value to whole centavos.
func arredondar(v float64) entities.Centavos {
	return entities.Centavos(math.Round(v))
}

// aplicarPercentual returns v plus pct percent of v, rounded to centavos.
func aplicarPercentual(v entities.Centavos, pct float64) entities.Centavos {
	return arredondar(float64(v) * (1 + pct/100))
}

// distribuir splits total across the given weights using the largest
// remainder method, so the shares always sum to total exactly regardless of
// rounding. Zero-weight entries receive zero. Ties go to the lower index.
func distribuir(total entities.Centavos, pesos []float64) []entities.Centavos {
	shares := make([]entities.Centavos, len(pesos))
	if total == 0 || len(pesos) == 0 {
		return shares
	}

	somaPesos := 0.0
	for _, p := range pesos {
		if p > 0 {
			somaPesos += p
		}
	}
	if somaPesos == 0 {
		return shares
	}

	type resto struct {
		idx  int
		frac float64
	}
	restos := make([]resto, 0, len(pesos))

	var distribuido entities.Centavos
	for i, p := range pesos {
		if p <= 0 {
			continue
		}
		bruto := float64(total) * p / somaPesos
		piso := math.Floor(bruto)
		shares[i] = entities.Centavos(piso)
		distribuido += shares[i]
		restos = append(restos, resto{idx: i, frac: bruto - piso})
	}

	sobra := total - distribuido
	// Hand out the leftover centavos to the largest fractional parts.
	for sobra > 0 {
		melhor := -1
		for j := range restos {
			if melhor == -1 || restos[j].frac > restos[melhor].frac {
				melhor = j
			}
		}
		if melhor == -1 {
			break
		}
		shares[restos[melhor].idx]++
		restos[melhor].frac = -1
		sobra--
	}
	return shares
}
