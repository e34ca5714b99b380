package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/solde-app/solde/internal/model"
)

// Category column fields, structurally parallel to the transaction
// pipeline but simpler.
const (
	FieldName    Field = "name"
	FieldCatType Field = "type"
	FieldIcon    Field = "icon"
	FieldColor   Field = "color"
	FieldSubCats Field = "subcategories"
)

var categoryFieldOrder = []Field{FieldName, FieldCatType, FieldIcon, FieldColor, FieldSubCats}

var categoryFieldKeywords = map[Field][]string{
	FieldName:    {"name", "nom"},
	FieldCatType: {"type"},
	FieldIcon:    {"icon", "icone"},
	FieldColor:   {"color", "couleur"},
	FieldSubCats: {"sous", "subcat"},
}

// CategoryInserter commits previewed categories in one batch.
type CategoryInserter interface {
	BulkInsertCategories(cats []model.Category) (int, error)
}

// CategoryPipeline drives a category import through the same three-step
// flow as the transaction pipeline.
type CategoryPipeline struct {
	state      State
	sheet      Sheet
	mapping    Mapping
	candidates []model.Category
}

// NewCategoryPipeline creates an empty category pipeline.
func NewCategoryPipeline() *CategoryPipeline {
	return &CategoryPipeline{state: StateFileSelect}
}

// State returns the current pipeline step.
func (p *CategoryPipeline) State() State { return p.state }

// LoadFile parses the input and auto-guesses the column mapping.
func (p *CategoryPipeline) LoadFile(r io.Reader) error {
	sheet, err := ReadSheet(r)
	if err != nil {
		return fmt.Errorf("loading file: %w", err)
	}
	p.sheet = sheet
	p.mapping = guessCategoryMapping(sheet.Headers)
	p.state = StateColumnMapping
	p.candidates = nil
	return nil
}

// Mapping returns the current field→header mapping.
func (p *CategoryPipeline) Mapping() Mapping { return p.mapping }

// SetMapping overrides one field's header.
func (p *CategoryPipeline) SetMapping(f Field, header string) error {
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

// BuildPreview materializes candidate categories. The one gate is a
// mapped name column.
func (p *CategoryPipeline) BuildPreview() error {
	if p.state == StateFileSelect {
		return fmt.Errorf("no file loaded")
	}
	if p.mapping[FieldName] == "" {
		return fmt.Errorf("incomplete mapping: no name column mapped")
	}

	p.candidates = p.candidates[:0]
	for _, row := range p.sheet.Rows {
		name := p.sheet.Cell(row, p.mapping[FieldName]).Str
		if name == "" {
			continue
		}
		p.candidates = append(p.candidates, model.Category{
			Name:          name,
			Type:          categoryType(p.cellStr(row, FieldCatType)),
			Icon:          p.cellStr(row, FieldIcon),
			Color:         p.cellStr(row, FieldColor),
			SubCategories: splitSubCategories(p.cellStr(row, FieldSubCats)),
		})
	}
	p.state = StatePreview
	return nil
}

// BackToMapping returns from Preview to ColumnMapping.
func (p *CategoryPipeline) BackToMapping() {
	if p.state == StatePreview {
		p.state = StateColumnMapping
		p.candidates = nil
	}
}

// Candidates returns the previewed categories.
func (p *CategoryPipeline) Candidates() []model.Category { return p.candidates }

// Finalize commits the previewed categories and reports the count.
func (p *CategoryPipeline) Finalize(ins CategoryInserter) (int, error) {
	if p.state != StatePreview {
		return 0, fmt.Errorf("nothing previewed")
	}
	return ins.BulkInsertCategories(p.candidates)
}

func (p *CategoryPipeline) cellStr(row []Cell, f Field) string {
	header := p.mapping[f]
	if header == "" {
		return ""
	}
	return p.sheet.Cell(row, header).Str
}

func guessCategoryMapping(headers []string) Mapping {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = Fold(h)
	}
	m := make(Mapping)
	claimed := make(map[int]bool)
	for _, f := range categoryFieldOrder {
		if i := matchHeader(folded, claimed, categoryFieldKeywords[f], false); i >= 0 {
			m[f] = headers[i]
			claimed[i] = true
		}
	}
	return m
}

// categoryType maps a type cell to REVENUE when it mentions "REV",
// EXPENSE otherwise.
func categoryType(s string) model.CategoryType {
	if strings.Contains(strings.ToUpper(s), "REV") {
		return model.CategoryRevenue
	}
	return model.CategoryExpense
}

func splitSubCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
