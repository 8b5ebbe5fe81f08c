package focus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CraftEconomy_Go/internal/domain"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		fce      float64
		expected float64
	}{
		{"no efficiency keeps base", 220, 0, 220},
		{"one halving", 220, 10000, 110},
		{"two halvings", 220, 20000, 55},
		{"practical ceiling", 1000, 40000, 62.5},
		{"negative efficiency clamps", 220, -5000, 220},
		{"negative base clamps", -10, 0, 0},
		{"nan base", math.NaN(), 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Cost(tt.base, tt.fce), 1e-9)
		})
	}
}

func TestCost_Monotonic(t *testing.T) {
	prev := math.Inf(1)
	for fce := 0.0; fce <= 60000; fce += 500 {
		c := Cost(500, fce)
		assert.LessOrEqual(t, c, prev)
		assert.GreaterOrEqual(t, c, 0.0)
		prev = c
	}
}

func TestTotalFCE(t *testing.T) {
	e := NewEngine(DefaultConfig())

	t.Run("sums every source", func(t *testing.T) {
		fce := e.TotalFCE(domain.FocusParameters{
			MasteryLevel:     100,
			SpecLevel:        100,
			SpecUniqueFCE:    250,
			SpecMutualFCE:    30,
			MutualSpecLevels: 10,
		})
		assert.InDelta(t, 100*30+100*250+10*30, fce, 1e-9)
	})

	t.Run("levels clamp to range", func(t *testing.T) {
		fce := e.TotalFCE(domain.FocusParameters{MasteryLevel: 500, SpecLevel: 500, SpecUniqueFCE: 250})
		assert.InDelta(t, 100*30+120*250, fce, 1e-9)
	})

	t.Run("never negative", func(t *testing.T) {
		fce := e.TotalFCE(domain.FocusParameters{MasteryLevel: -4, SpecLevel: 10, SpecUniqueFCE: -250, MutualSpecLevels: -2})
		assert.Zero(t, fce)
	})
}

func TestEvaluate(t *testing.T) {
	e := NewEngine(Config{MasteryFCEPerLevel: 100})

	r := e.Evaluate(220, domain.FocusParameters{MasteryLevel: 100, SpecLevel: 40, SpecUniqueFCE: 250})

	assert.InDelta(t, 20000, r.TotalFCE, 1e-9)
	assert.InDelta(t, 55, r.FocusCost, 1e-9)
	assert.InDelta(t, 0.75, r.Reduction, 1e-9)
	assert.InDelta(t, r.FocusCost, e.FocusCost(220, domain.FocusParameters{MasteryLevel: 100, SpecLevel: 40, SpecUniqueFCE: 250}), 1e-9)

	zero := e.Evaluate(0, domain.FocusParameters{})
	assert.Zero(t, zero.Reduction)
}
