package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RatioToPercent converte uma razão fracionária (0.833) em percentual inteiro
// arredondado (83). Usado apenas na camada de apresentação.
func RatioToPercent(ratio float64) int {
	return int(math.Round(ratio * 100))
}
