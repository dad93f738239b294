package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeNotation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		ctx  NotationContext
		want string
	}{
		{"slash one of one", "Gold Power 1/1", SetNames, "Gold Power 1-of-1"},
		{"spelled one of one", "Gold Power 1 of 1", SetNames, "Gold Power 1-of-1"},
		{"spaced slash one of one", "Black 1 / 1", Variants, "Black 1-of-1"},
		{"one of ten untouched", "Gold 1 of 10", SetNames, "Gold 1 of 10"},
		{"trailing fraction", "Electric Etch Green /5", SetNames, "Electric Etch Green-5"},
		{"trailing fraction no space", "Teal/199", Variants, "Teal-199"},
		{"base set", "Base Set", SetNames, "Base"},
		{"optic base set", "Optic Base Set", SetNames, "Optic"},
		{"optic base", "Optic Base", SetNames, "Optic"},
		{"base optic", "Base Optic", SetNames, "Optic"},
		{"checklist dropped", "Rated Rookies Checklist", SetNames, "Rated Rookies"},
		{"set word dropped", "Equinox Set", SetNames, "Equinox"},
		{"variant base set checklist", "Base Set Checklist Gold /10", Variants, "Gold-10"},
		{"variant base set", "Base Set Pink Ice", Variants, "Pink Ice"},
		{"variant bare base kept", "Base", Variants, "Base"},
		{"filler exposes fraction", "Green /5 Checklist", Variants, "Green-5"},
		{"whitespace collapsed", "  Pink   Velocity ", Variants, "Pink Velocity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizeNotation(tt.in, tt.ctx))
		})
	}
}

func TestCanonicalizeNotationIdempotent(t *testing.T) {
	inputs := []string{
		"Gold Power 1/1",
		"Optic Base Set",
		"Base Set Checklist Gold /10",
		"Green /5 Checklist",
		"1 set of 1",
		"Base Optic Set",
		"Electric Etch Marble Flood /8",
	}
	for _, ctx := range []NotationContext{SetNames, Variants} {
		for _, in := range inputs {
			once := CanonicalizeNotation(in, ctx)
			assert.Equal(t, once, CanonicalizeNotation(once, ctx), "ctx %d input %q", ctx, in)
		}
	}
}

func TestCanonicalizeOneOfOne(t *testing.T) {
	assert.Equal(t, "Gold Power 1-of-1", CanonicalizeOneOfOne("Gold Power 1/1"))
	assert.Equal(t, "Base Set Gold /10", CanonicalizeOneOfOne("Base Set Gold /10"))
}
