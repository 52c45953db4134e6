package document

import (
	"errors"
	"fmt"
	"strings"
)

// Type is a document flavour offered by the creator.
type Type string

const (
	Word       Type = "word"
	Excel      Type = "excel"
	PowerPoint Type = "powerpoint"
)

// ErrUnknownType is returned by ParseType for unsupported names.
var ErrUnknownType = errors.New("unknown document type")

// Types lists the supported document types in display order.
func Types() []Type {
	return []Type{Word, Excel, PowerPoint}
}

// ParseType resolves a user supplied name, accepting common aliases.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "word", "doc", "docx":
		return Word, nil
	case "excel", "xls", "xlsx", "spreadsheet":
		return Excel, nil
	case "powerpoint", "ppt", "pptx", "slides":
		return PowerPoint, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Placeholder returns the prompt hint shown for t.
func Placeholder(t Type) string {
	switch t {
	case Word:
		return "Describe the document you want to create (e.g., 'Create a business proposal for a new mobile app with market analysis, financial projections, and implementation timeline')"
	case Excel:
		return "Describe the spreadsheet you need (e.g., 'Create a comprehensive budget tracker with monthly expenses, income categories, and savings goals with charts')"
	case PowerPoint:
		return "Describe your presentation (e.g., 'Create a 10-slide presentation about renewable energy benefits, including statistics, case studies, and future outlook')"
	default:
		return "Describe what you want to create..."
	}
}

// Extension returns the download file extension for t.
func Extension(t Type) string {
	switch t {
	case Word:
		return "docx"
	case Excel:
		return "xlsx"
	case PowerPoint:
		return "pptx"
	default:
		return "txt"
	}
}
