package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKeyword_LabeledFields(t *testing.T) {
	text := "Item analysis\nBrand: Sony\nModel: S089\nCondition: good, minor scratches"

	assert.Equal(t, "Sony S089", ResolveKeyword("", text, "", ""))
}

func TestResolveKeyword_KnownBrandAndModelNumber(t *testing.T) {
	text := "A Nintendo handheld console, looks like unit A1234 with the original box"

	assert.Equal(t, "Nintendo A1234", ResolveKeyword("", text, "", ""))
}

func TestResolveKeyword_ManualOverridesWin(t *testing.T) {
	text := "Brand: Sony\nModel: S089\nAlso mentions Apple and A1234"

	assert.Equal(t, "Bose QC45", ResolveKeyword("", text, "Bose", "QC45"))
}

func TestResolveKeyword_DirectQueryWins(t *testing.T) {
	assert.Equal(t, "  iPad Air 2 ", ResolveKeyword("  iPad Air 2 ", "Brand: Sony", "Bose", "QC45"))
}

func TestResolveKeyword_Unresolvable(t *testing.T) {
	assert.Empty(t, ResolveKeyword("", "a wooden chair with four legs", "", ""))
	assert.Empty(t, ResolveKeyword("", "", "Sony", "S089"))
}

func TestResolveKeyword_BrandOnly(t *testing.T) {
	assert.Equal(t, "Canon", ResolveKeyword("", "an old canon film camera", "", ""))
}

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		manual string
		want   string
	}{
		{"manual", "Brand: Sony", "Bose", "Bose"},
		{"brand label", "brand:   Logitech \nother", "", "Logitech"},
		{"manufacturer label stops at comma", "Manufacturer: Bose, made in USA", "", "Bose"},
		{"label beats known list", "Samsung charger. Brand: Anker", "", "Anker"},
		{"known list order breaks ties", "works with google and apple devices", "", "Apple"},
		{"case-insensitive substring", "SAMSUNG GALAXY", "", "Samsung"},
		{"none", "plain text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBrand(tt.text, tt.manual))
		})
	}
}

func TestExtractModel(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		manual string
		want   string
	}{
		{"manual", "Model: S089", "XYZ", "XYZ"},
		{"model label", "Model: WH-1000XM4\nColor: black", "", "WH-1000XM4"},
		{"model number label", "Model Number: CUH-2215B, 500GB", "", "CUH-2215B"},
		{"model no label", "model no.: HAC-001", "", "HAC-001"},
		{"model hash label", "Model #: 1234-AB", "", "1234-AB"},
		{"pattern fallback", "sticker reads A1932 on the back", "", "A1932"},
		{"pattern with suffix", "part B12345X", "", "B12345X"},
		{"pattern is case-sensitive", "serial a1234", "", ""},
		{"pattern needs word boundary", "XA1234", "", ""},
		{"pattern first match", "S089 and A1234", "", "S089"},
		{"none", "nothing useful", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractModel(tt.text, tt.manual))
		})
	}
}
