package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// serialEpochOffset converts spreadsheet day serials (1899-12-30 base) to
// the Unix epoch.
const serialEpochOffset = 25569

// ParseAmount reads a monetary cell best-effort: parenthesized negatives,
// trailing minus, comma decimal separator, currency symbols and whitespace
// stripped. Unparseable input yields zero, never an error; the preview
// step is where the user catches bad guesses.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		neg = true
		s = strings.TrimSuffix(s, "-")
	}
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimPrefix(s, "-")
	}

	s = strings.ReplaceAll(s, ",", ".")
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '.' {
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	if neg {
		d = d.Neg()
	}
	return d
}

// dateLayouts are probed in order for string-valued date cells before the
// delimiter heuristics kick in.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// ParseDate reads a date cell. Numeric cells are spreadsheet day serials.
// String cells go through known layouts, then a slash/dash heuristic where
// the 4-digit-year position picks DD/MM/YYYY or YYYY/MM/DD. On failure ok
// is false and the caller keeps the raw string.
func ParseDate(c Cell) (time.Time, bool) {
	if c.Kind == CellNumber {
		secs := int64((c.Num - serialEpochOffset) * 86400)
		t := time.Unix(secs, 0).UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	if c.Kind != CellString {
		return time.Time{}, false
	}

	s := strings.TrimSpace(c.Str)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return parseDelimitedDate(s)
}

func parseDelimitedDate(s string) (time.Time, bool) {
	sep := "/"
	if !strings.Contains(s, sep) {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	layout := "02" + sep + "01" + sep + "2006"
	if len(parts[0]) == 4 {
		layout = "2006" + sep + "01" + sep + "02"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseMarker infers a reconciliation marker from free text: check-style
// tokens map to GREEN_CHECK, the exact marker letters to themselves, and
// everything else to NONE.
func ParseMarker(raw string) model.Marker {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "✓" || s == "✔" || strings.Contains(s, "CHECK") {
		return model.MarkerGreenCheck
	}
	switch model.Marker(s) {
	case model.MarkerC, model.MarkerG, model.MarkerG2, model.MarkerD, model.MarkerD2:
		return model.Marker(s)
	}
	return model.MarkerNone
}

// FindCategory resolves a category for an imported transaction, loosest
// rule last: exact name match on the mapped category cell, then any
// category name appearing inside the description, then the first category
// of the inferred type, then the first category outright. With no
// categories at all, ok is false and the row stays uncategorized.
func FindCategory(mapped, description string, txnType model.TransactionType, categories []model.Category) (model.Category, bool) {
	if len(categories) == 0 {
		return model.Category{}, false
	}

	if mapped != "" {
		for _, c := range categories {
			if strings.EqualFold(c.Name, mapped) {
				return c, true
			}
		}
	}

	lowerDesc := strings.ToLower(description)
	for _, c := range categories {
		if c.Name != "" && strings.Contains(lowerDesc, strings.ToLower(c.Name)) {
			return c, true
		}
	}

	wantType := model.CategoryExpense
	if txnType == model.TypeRevenue {
		wantType = model.CategoryRevenue
	}
	for _, c := range categories {
		if c.Type == wantType {
			return c, true
		}
	}

	return categories[0], true
}
