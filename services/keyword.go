package services

import (
	"regexp"
	"strings"
)

// KnownBrands are matched as case-insensitive substrings when the text has no
// labeled brand. Order is the tie-break: the first brand found wins.
var KnownBrands = []string{
	"Sony", "Apple", "Samsung", "Microsoft", "Nintendo", "Square",
	"HP", "Dell", "Lenovo", "LG", "Canon", "Nikon", "Google",
}

var (
	brandLabelPattern = regexp.MustCompile(`(?i)(?:Brand|Manufacturer):\s*([^\n,]+)`)
	modelLabelPattern = regexp.MustCompile(`(?i)(?:Model|Model\s*(?:Number|No\.?|#)):\s*([^\n,]+)`)

	// Model numbers like S089, A1234 or B12345X. Case-sensitive on purpose.
	modelNumberPattern = regexp.MustCompile(`\b([A-Z]\d{3,5}[A-Z]?)\b`)
)

// ExtractBrand returns manual when non-empty, then a labeled "Brand:" or
// "Manufacturer:" value, then the first known brand mentioned in text.
func ExtractBrand(text, manual string) string {
	if manual != "" {
		return manual
	}

	if m := brandLabelPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	lower := strings.ToLower(text)
	for _, brand := range KnownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}

	return ""
}

// ExtractModel returns manual when non-empty, then a labeled model value
// ("Model:", "Model Number:", "Model No.:", "Model #:"), then the first token
// that looks like a model number.
func ExtractModel(text, manual string) string {
	if manual != "" {
		return manual
	}

	if m := modelLabelPattern.FindStringSubmatch(text); m != nil {
		return truncateAtBreak(strings.TrimSpace(m[1]))
	}

	if m := modelNumberPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}

	return ""
}

// ResolveKeyword picks the search keyword for a request. A direct query is
// used as-is; otherwise brand and model are extracted from the analysis text.
// An empty result means the product could not be determined.
func ResolveKeyword(searchQuery, analysisText, manualBrand, manualModel string) string {
	if searchQuery != "" {
		return searchQuery
	}
	if analysisText == "" {
		return ""
	}

	brand := ExtractBrand(analysisText, manualBrand)
	model := ExtractModel(analysisText, manualModel)

	return strings.TrimSpace(brand + " " + model)
}

func truncateAtBreak(s string) string {
	if i := strings.IndexAny(s, "\n,"); i >= 0 {
		return s[:i]
	}
	return s
}
