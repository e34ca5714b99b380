package importer

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Field names a transaction attribute a spreadsheet column can map to.
type Field string

const (
	FieldDate        Field = "date"
	FieldDescription Field = "description"
	FieldAmount      Field = "amount"
	FieldDebit       Field = "debit"
	FieldCredit      Field = "credit"
	FieldCategory    Field = "category"
	FieldSubCategory Field = "subcategory"
	FieldPayment     Field = "payment"
	FieldMarker      Field = "marker"
)

// Mapping assigns a header to each mapped field. Every auto-guessed entry
// can be overridden before the preview is built.
type Mapping map[Field]string

// fieldKeywords drive the auto-guess: a folded header containing any
// keyword maps to the field. Order matters — "sous categorie" must claim
// the subcategory slot before "categorie" claims category.
var fieldOrder = []Field{
	FieldDate, FieldDebit, FieldCredit, FieldAmount,
	FieldSubCategory, FieldCategory,
	FieldDescription, FieldPayment, FieldMarker,
}

var fieldKeywords = map[Field][]string{
	FieldDate:        {"date"},
	FieldDebit:       {"debit"},
	FieldCredit:      {"credit"},
	FieldAmount:      {"montant", "amount"},
	FieldSubCategory: {"sous categorie", "sous-categorie", "subcategory"},
	FieldCategory:    {"categorie", "category"},
	FieldDescription: {"libelle", "description", "label"},
	FieldPayment:     {"paiement", "payment", "moyen"},
	FieldMarker:      {"pointage", "rapprochement", "marker", "statut"},
}

// levenshteinMax is the edit-distance ceiling for the near-miss fallback
// when no substring rule matched (typo'd headers like "amout").
const levenshteinMax = 2

// GuessMapping proposes a field→header mapping from the header row using
// case- and diacritic-insensitive substring rules, falling back to a
// near-miss edit-distance match. Each header is claimed at most once.
func GuessMapping(headers []string) Mapping {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = Fold(h)
	}

	m := make(Mapping)
	claimed := make(map[int]bool)

	for _, f := range fieldOrder {
		if i := matchHeader(folded, claimed, fieldKeywords[f], false); i >= 0 {
			m[f] = headers[i]
			claimed[i] = true
		}
	}
	for _, f := range fieldOrder {
		if _, ok := m[f]; ok {
			continue
		}
		if i := matchHeader(folded, claimed, fieldKeywords[f], true); i >= 0 {
			m[f] = headers[i]
			claimed[i] = true
		}
	}
	return m
}

func matchHeader(folded []string, claimed map[int]bool, keywords []string, fuzzy bool) int {
	for i, h := range folded {
		if claimed[i] {
			continue
		}
		for _, kw := range keywords {
			if !fuzzy && strings.Contains(h, kw) {
				return i
			}
			if fuzzy && len(kw) >= 4 && levenshtein.ComputeDistance(h, kw) <= levenshteinMax {
				return i
			}
		}
	}
	return -1
}

// Validate enforces the pipeline's one hard gate: a date column plus
// either an amount column or at least one of debit/credit.
func (m Mapping) Validate() error {
	if m[FieldDate] == "" {
		return fmt.Errorf("no date column mapped")
	}
	if m[FieldAmount] == "" && m[FieldDebit] == "" && m[FieldCredit] == "" {
		return fmt.Errorf("no amount or debit/credit column mapped")
	}
	return nil
}

// foldRunes maps accented characters seen in French bank exports to their
// base letters.
var foldRunes = map[rune]rune{
	'à': 'a', 'â': 'a', 'ä': 'a', 'á': 'a',
	'ç': 'c',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'î': 'i', 'ï': 'i', 'í': 'i',
	'ô': 'o', 'ö': 'o', 'ó': 'o',
	'ù': 'u', 'û': 'u', 'ü': 'u', 'ú': 'u',
}

// Fold lowercases a string and strips the diacritics that commonly appear
// in spreadsheet headers.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		if base, ok := foldRunes[r]; ok {
			return base
		}
		return r
	}, s)
}
