package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessMapping_FrenchHeaders(t *testing.T) {
	headers := []string{"Date", "Libellé", "Débit", "Crédit", "Catégorie", "Sous-catégorie"}
	m := GuessMapping(headers)

	assert.Equal(t, "Date", m[FieldDate])
	assert.Equal(t, "Libellé", m[FieldDescription])
	assert.Equal(t, "Débit", m[FieldDebit])
	assert.Equal(t, "Crédit", m[FieldCredit])
	assert.Equal(t, "Catégorie", m[FieldCategory])
	assert.Equal(t, "Sous-catégorie", m[FieldSubCategory], "subcategory must claim its header before category")
}

func TestGuessMapping_SingleAmountColumn(t *testing.T) {
	m := GuessMapping([]string{"Transaction Date", "Description", "Amount"})

	assert.Equal(t, "Transaction Date", m[FieldDate])
	assert.Equal(t, "Description", m[FieldDescription])
	assert.Equal(t, "Amount", m[FieldAmount])
	assert.Empty(t, m[FieldDebit])
}

func TestGuessMapping_LevenshteinFallback(t *testing.T) {
	// "Amout" matches no substring rule but is one edit from "amount".
	m := GuessMapping([]string{"Date", "Description", "Amout"})
	assert.Equal(t, "Amout", m[FieldAmount])
}

func TestGuessMapping_ClaimsHeaderOnce(t *testing.T) {
	m := GuessMapping([]string{"Date"})
	assert.Equal(t, "Date", m[FieldDate])
	assert.Empty(t, m[FieldDescription])
}

func TestMappingValidate(t *testing.T) {
	assert.Error(t, Mapping{}.Validate())
	assert.Error(t, Mapping{FieldDate: "Date"}.Validate(), "date alone is not enough")
	assert.Error(t, Mapping{FieldAmount: "Amount"}.Validate(), "amount alone is not enough")

	assert.NoError(t, Mapping{FieldDate: "Date", FieldAmount: "Amount"}.Validate())
	assert.NoError(t, Mapping{FieldDate: "Date", FieldDebit: "Débit"}.Validate())
	assert.NoError(t, Mapping{FieldDate: "Date", FieldCredit: "Crédit"}.Validate())
}

func TestFold(t *testing.T) {
	assert.Equal(t, "categorie", Fold(" Catégorie "))
	assert.Equal(t, "debit", Fold("DÉBIT"))
	assert.Equal(t, "plain", Fold("plain"))
}
