package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseVariantText(t *testing.T) {
	tests := []struct {
		in   string
		want VariantEntry
	}{
		{"Gold /10", VariantEntry{"Gold", 10}},
		{"Teal/199", VariantEntry{"Teal", 199}},
		{"Press Proof Black 1/1", VariantEntry{"Press Proof Black", 1}},
		{"Black 1 of 1", VariantEntry{"Black", 1}},
		{"Holo", VariantEntry{"Holo", 0}},
		{"  Pink   Ice ", VariantEntry{"Pink Ice", 0}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVariantText(tt.in))
		})
	}
}

func TestParsePrintRun(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"-", 0, false},
		{"25", 25, false},
		{"/25", 25, false},
		{" / 25 ", 25, false},
		{"3/25", 25, false},
		{"3 of 25", 25, false},
		{"1 of 1", 1, false},
		{"1/1", 1, false},
		{"gold", 0, true},
		{"-5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePrintRun(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrintRun(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePrintRun(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRowDecodesPrintRunNotation(t *testing.T) {
	var rows []Row
	require.NoError(t, yaml.Unmarshal([]byte(`
- {set: Base Set Black, number: "7", player: Pedri, print_run: 1 of 1}
- {set: Base Set, number: "8", player: Gavi}
- {set: Base Set Teal, number: "9", player: Yamal, print_run: 199}
`), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, PrintRun(1), rows[0].PrintRun)
	assert.Equal(t, PrintRun(0), rows[1].PrintRun)
	assert.Equal(t, PrintRun(199), rows[2].PrintRun)

	var bad []Row
	assert.Error(t, yaml.Unmarshal([]byte(`- {set: Base, number: "1", print_run: lots}`), &bad))
}
