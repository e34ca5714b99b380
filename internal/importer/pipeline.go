package importer

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/solde-app/solde/internal/model"
)

// State is a pipeline step. The flow is linear — FileSelect,
// ColumnMapping, Preview — with one back-edge from Preview to
// ColumnMapping.
type State int

const (
	StateFileSelect State = iota
	StateColumnMapping
	StatePreview
)

// Candidate is a previewed transaction. Nothing is inserted until
// Finalize; the preview is where lossy parses surface for review.
type Candidate struct {
	Txn model.Transaction
	// RawDate carries the unparseable original when DateOK is false.
	RawDate    string
	DateOK     bool
	CategoryOK bool
}

// TransactionInserter commits previewed transactions in one batch.
type TransactionInserter interface {
	BulkInsertTransactions(txns []model.Transaction) (int, error)
}

// Pipeline drives a transaction import: load a sheet, adjust the guessed
// column mapping, build a preview, finalize.
type Pipeline struct {
	state      State
	sheet      Sheet
	mapping    Mapping
	categories []model.Category
	candidates []Candidate

	// InvertSign flips every resolved amount, for banks exporting
	// debits as positive numbers.
	InvertSign bool
}

// NewPipeline creates a pipeline over the existing categories.
func NewPipeline(categories []model.Category) *Pipeline {
	return &Pipeline{state: StateFileSelect, categories: categories}
}

// State returns the current pipeline step.
func (p *Pipeline) State() State { return p.state }

// LoadFile parses the input and auto-guesses the column mapping, moving
// the pipeline to ColumnMapping.
func (p *Pipeline) LoadFile(r io.Reader) error {
	sheet, err := ReadSheet(r)
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}
	p.sheet = sheet
	p.mapping = GuessMapping(sheet.Headers)
	p.state = StateColumnMapping
	p.candidates = nil
	return nil
}

// Mapping returns the current field→header mapping.
func (p *Pipeline) Mapping() Mapping { return p.mapping }

// SetMapping overrides one field's header. An empty header unmaps the
// field.
func (p *Pipeline) SetMapping(f Field, header string) error {
	if p.state == StateFileSelect {
		return fmt.Errorf("no file loaded")
	}
	if header == "" {
		delete(p.mapping, f)
		return nil
	}
	for _, h := range p.sheet.Headers {
		if h == header {
			p.mapping[f] = header
			return nil
		}
	}
	return fmt.Errorf("unknown header %q", header)
}

// BuildPreview materializes candidates from the mapped columns and moves
// to Preview. It fails only on the mapping hard gate; individual cell
// parses degrade silently into the candidate for the user to review.
func (p *Pipeline) BuildPreview() error {
	if p.state == StateFileSelect {
		return fmt.Errorf("no file loaded")
	}
	if err := p.mapping.Validate(); err != nil {
		return fmt.Errorf("incomplete mapping: %w", err)
	}

	p.candidates = make([]Candidate, 0, len(p.sheet.Rows))
	for _, row := range p.sheet.Rows {
		p.candidates = append(p.candidates, p.buildCandidate(row))
	}
	p.state = StatePreview
	return nil
}

// BackToMapping returns from Preview to ColumnMapping, discarding the
// preview.
func (p *Pipeline) BackToMapping() {
	if p.state == StatePreview {
		p.state = StateColumnMapping
		p.candidates = nil
	}
}

// Candidates returns the previewed rows.
func (p *Pipeline) Candidates() []Candidate { return p.candidates }

// Finalize commits the previewed candidates in one batch and reports how
// many records were inserted.
func (p *Pipeline) Finalize(ins TransactionInserter) (int, error) {
	if p.state != StatePreview {
		return 0, fmt.Errorf("nothing previewed")
	}
	txns := make([]model.Transaction, len(p.candidates))
	for i, c := range p.candidates {
		txns[i] = c.Txn
	}
	return ins.BulkInsertTransactions(txns)
}

func (p *Pipeline) cell(row []Cell, f Field) Cell {
	header := p.mapping[f]
	if header == "" {
		return Cell{}
	}
	return p.sheet.Cell(row, header)
}

func (p *Pipeline) buildCandidate(row []Cell) Candidate {
	amount := p.resolveAmount(row)
	if p.InvertSign {
		amount = amount.Neg()
	}

	txn := model.Transaction{
		Description:   p.cell(row, FieldDescription).Str,
		SubCategory:   p.cell(row, FieldSubCategory).Str,
		PaymentMethod: p.cell(row, FieldPayment).Str,
		Marker:        ParseMarker(p.cell(row, FieldMarker).Str),
	}

	// Sign decides the type; both sides store the magnitude.
	if amount.IsNegative() {
		txn.Type = model.TypeExpense
		txn.Expense = amount.Abs()
	} else {
		txn.Type = model.TypeRevenue
		txn.Revenue = amount
	}

	c := Candidate{Txn: txn}

	dateCell := p.cell(row, FieldDate)
	if t, ok := ParseDate(dateCell); ok {
		c.Txn.Date = t
		c.DateOK = true
	} else {
		c.RawDate = dateCell.Str
	}

	if cat, ok := FindCategory(p.cell(row, FieldCategory).Str, txn.Description, txn.Type, p.categories); ok {
		c.Txn.CategoryID = cat.ID
		c.CategoryOK = true
	}
	return c
}

// resolveAmount prefers split debit/credit columns (credit minus the
// absolute debit) over a single amount column.
func (p *Pipeline) resolveAmount(row []Cell) decimal.Decimal {
	if p.mapping[FieldDebit] != "" || p.mapping[FieldCredit] != "" {
		debit := ParseAmount(p.cell(row, FieldDebit).Str)
		credit := ParseAmount(p.cell(row, FieldCredit).Str)
		return credit.Sub(debit.Abs())
	}
	return ParseAmount(p.cell(row, FieldAmount).Str)
}
