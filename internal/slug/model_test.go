package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelSlugs(t *testing.T) {
	rel := Release{Manufacturer: "Panini", Name: "2024-25 Donruss Soccer", Year: "2024-25"}
	assert.Equal(t, "Donruss Soccer", rel.Title())
	assert.Equal(t, "2024-25-panini-donruss-soccer", rel.Slug())

	base := Set{Name: "Base Set", Kind: Base, Release: rel}
	assert.False(t, base.IsParallel())
	assert.Equal(t, "2024-25-donruss-soccer-base", base.Slug())

	flood := Set{
		Name:     "Base Set Electric Etch Marble Flood",
		Release:  rel,
		Parent:   &base,
		Parallel: &ParallelDescriptor{VariantName: "Electric Etch Marble Flood", PrintRun: 8},
	}
	assert.True(t, flood.IsParallel())
	assert.Equal(t, "Electric Etch Marble Flood /8", flood.ParallelText())
	assert.Equal(t, "2024-25-donruss-soccer-electric-etch-marble-flood-8", flood.Slug())

	card := Card{Set: flood, CardNumber: "1", PlayerName: "Jude Bellingham"}
	assert.Equal(t, "2024-25-donruss-soccer-1-jude-bellingham-electric-etch-marble-flood-8", card.Slug())

	baseCard := Card{Set: base, CardNumber: "1", PlayerName: "Jude Bellingham"}
	assert.Equal(t, "2024-25-donruss-soccer-base-set-1-jude-bellingham", baseCard.Slug())
}

func TestModelParallelInheritsKind(t *testing.T) {
	rel := Release{Manufacturer: "Panini", Name: "Obsidian Soccer", Year: "2024-25"}
	autos := Set{Name: "Dual Jersey Ink", Kind: Autograph, Release: rel}
	green := Set{
		Name:     "Dual Jersey Ink Electric Etch Green",
		Release:  rel,
		Parent:   &autos,
		Parallel: &ParallelDescriptor{VariantName: "Electric Etch Green", PrintRun: 5},
	}
	assert.Equal(t, "2024-25-obsidian-soccer-auto-electric-etch-green-5", green.Slug())
}

func TestReleaseTitleWithoutYear(t *testing.T) {
	rel := Release{Manufacturer: "Panini", Name: "2024 Prizm"}
	assert.Equal(t, "2024 Prizm", rel.Title())
	assert.Equal(t, "panini-2024-prizm", rel.Slug())
}
