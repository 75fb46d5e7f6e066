package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioToPercent(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  int
	}{
		{name: "arredonda para baixo", ratio: 5.0 / 6.0, want: 83},
		{name: "arredonda para cima", ratio: 0.836, want: 84},
		{name: "zero", ratio: 0, want: 0},
		{name: "queda total", ratio: 1.0, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RatioToPercent(tt.ratio))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 3.14, RoundWithTwoDecimalPlace(3.14159))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.0, RoundWithTwoDecimalPlace(9.999))
}
