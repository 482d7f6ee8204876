package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bistro/internal/service"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"18,50€", 18.5},
		{"$ 45,00", 45},
		{"€11.00", 11},
		{"17", 17},
		{"1.234,50 €", 1.234},
		{"12,5,0", 12.5},
		{",75", 0.75},
		{"free", 0},
		{"", 0},
		{".", 0},
		{"€", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.ParsePrice(tt.in), 1e-9)
		})
	}
}

func TestFormatTotal(t *testing.T) {
	assert.Equal(t, "$37.00", service.FormatTotal(37))
	assert.Equal(t, "$0.00", service.FormatTotal(0))
	assert.Equal(t, "$14.50", service.FormatTotal(14.5))
}
