package utils_test

import (
	"testing"

	"github.com/solekart/solekart/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"Zero", 0, 0},
		{"Already Rounded", 99.99, 99.99},
		{"Rounds Down", 19.994, 19.99},
		{"Rounds Up", 19.996, 20.00},
		{"Half Cent Rounds Away", 59.897, 59.90},
		{"Negative Rounds Away From Zero", -19.996, -20.00},
		{"Accumulated Drift", 598.9700000000001, 598.97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, utils.RoundCents(tt.amount), 1e-9)
		})
	}
}
