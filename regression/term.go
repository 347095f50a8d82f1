package regression

import (
	"fmt"
	"strings"

	"github.com/arloliu/varistat/errs"
)

// TermType classifies a model term.
type TermType uint8

const (
	// TermContinuous is a numeric predictor entered as-is.
	TermContinuous TermType = iota
	// TermCategorical is a factor dummy-coded against its first level.
	TermCategorical
	// TermInteraction is the product of two or more constituent columns.
	TermInteraction
)

// termTypeNames maps TermType to its string representation.
var termTypeNames = map[TermType]string{
	TermContinuous:  "continuous",
	TermCategorical: "categorical",
	TermInteraction: "interaction",
}

// String returns the string representation of the term type.
func (t TermType) String() string {
	if name, exists := termTypeNames[t]; exists {
		return name
	}

	return "unknown"
}

// termTypeFromString maps string names to TermType.
var termTypeFromString = map[string]TermType{
	"continuous":  TermContinuous,
	"categorical": TermCategorical,
	"interaction": TermInteraction,
}

// ParseTermType returns the TermType for a name, ignoring case.
func ParseTermType(name string) (TermType, error) {
	if t, exists := termTypeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return t, nil
	}

	return 0, fmt.Errorf("%w: term type %q", errs.ErrInvalidOption, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t TermType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so term types can be
// written by name in configuration files.
func (t *TermType) UnmarshalText(text []byte) error {
	parsed, err := ParseTermType(string(text))
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// Term is one term of a regression model.
type Term struct {
	// Columns are the source variables. Continuous and categorical terms use
	// exactly one; interactions use two or more.
	Columns []string `yaml:"columns" json:"columns"`
	// Label is the display name. Name falls back to the columns when it is empty.
	Label string `yaml:"label" json:"label"`
	// Type selects how the columns are encoded.
	Type TermType `yaml:"type" json:"type"`
}

// Continuous returns a continuous term for column.
func Continuous(column string) Term {
	return Term{Columns: []string{column}, Label: column, Type: TermContinuous}
}

// Categorical returns a categorical term for column.
func Categorical(column string) Term {
	return Term{Columns: []string{column}, Label: column, Type: TermCategorical}
}

// Interaction returns the interaction of the given columns, labelled "A:B".
func Interaction(columns ...string) Term {
	return Term{
		Columns: append([]string(nil), columns...),
		Label:   strings.Join(columns, ":"),
		Type:    TermInteraction,
	}
}

// Name returns the label, or the columns joined by ":" when no label is set.
// Names identify terms within a model and must be unique.
func (t Term) Name() string {
	if t.Label != "" {
		return t.Label
	}

	return strings.Join(t.Columns, ":")
}

// describe returns the phrase used in explanations, e.g. "interaction term".
func (t Term) describe() string {
	return t.Type.String() + " term"
}

func (t Term) validate() error {
	switch t.Type {
	case TermContinuous, TermCategorical:
		if len(t.Columns) != 1 {
			return fmt.Errorf("%w: %s term %q needs exactly one column, got %d",
				errs.ErrInvalidOption, t.Type, t.Name(), len(t.Columns))
		}
	case TermInteraction:
		if len(t.Columns) < 2 {
			return fmt.Errorf("%w: interaction term %q needs at least two columns, got %d",
				errs.ErrInvalidOption, t.Name(), len(t.Columns))
		}
	default:
		return fmt.Errorf("%w: term %q has unknown type %d", errs.ErrInvalidOption, t.Name(), t.Type)
	}

	return nil
}
