package dataset

import (
	"strconv"
)

// Kind tags the content of a Value.
type Kind uint8

const (
	// KindMissing marks an empty cell.
	KindMissing Kind = iota
	// KindNumber marks a numeric cell.
	KindNumber
	// KindCategory marks a categorical cell.
	KindCategory
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Value is a single cell: a number, a category label, or missing.
// The zero Value is missing.
type Value struct {
	kind Kind
	num  float64
	cat  string
}

// Number returns a numeric Value.
func Number(v float64) Value {
	return Value{kind: KindNumber, num: v}
}

// Category returns a categorical Value.
func Category(label string) Value {
	return Value{kind: KindCategory, cat: label}
}

// Missing returns the missing Value.
func Missing() Value {
	return Value{}
}

// Kind returns the tag of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether v is missing.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric content and whether v is a number.
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Label returns the category label and whether v is a category.
func (v Value) Label() (string, bool) {
	return v.cat, v.kind == KindCategory
}

// String renders v for display; missing values render as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindCategory:
		return v.cat
	default:
		return ""
	}
}
