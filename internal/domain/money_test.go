package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidAmount(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{name: "Whole amount", value: 100, want: true},
		{name: "Cents", value: 12.34, want: true},
		{name: "One cent", value: 0.01, want: true},
		{name: "Largest storable", value: 999999999999.99, want: true},
		{name: "Zero", value: 0, want: false},
		{name: "Negative", value: -5, want: false},
		{name: "Fraction of a cent", value: 0.004, want: false},
		{name: "Three decimals", value: 10.125, want: false},
		{name: "Too large", value: 1e13, want: false},
		{name: "Just above the column limit", value: 1e12, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(tt.value))
		})
	}
}

func TestValidAmountNonFinite(t *testing.T) {
	assert.False(t, ValidAmount(math.NaN()))
	assert.False(t, ValidAmount(math.Inf(1)))
}
