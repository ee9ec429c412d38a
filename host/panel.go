package host

import (
	"github.com/dnldd/candleplugin/shared"
)

const (
	// sourceEntry is the name of the editor panel entry selecting the data element.
	sourceEntry = "source"
	// ElementKind marks an editor panel entry selecting a data element.
	ElementKind = "element"
	// ColumnKind marks an editor panel entry selecting a column of an element.
	ColumnKind = "column"
)

// PanelEntry represents an entry of the host's editor panel.
type PanelEntry struct {
	// Name is the configuration key of the entry.
	Name string `json:"name"`
	// Type is the kind of value the entry selects.
	Type string `json:"type"`
	// Source names the entry a column is selected from.
	Source string `json:"source,omitempty"`
	// AllowMultiple permits selecting more than one column.
	AllowMultiple bool `json:"allowMultiple"`
}

// EditorPanel returns the editor panel the widget registers with its host: the data
// element followed by one single column entry per candlestick field.
func EditorPanel() []PanelEntry {
	entries := make([]PanelEntry, 0, len(shared.Fields)+1)
	entries = append(entries, PanelEntry{Name: sourceEntry, Type: ElementKind})
	for _, f := range shared.Fields {
		entries = append(entries, PanelEntry{
			Name:          f.String(),
			Type:          ColumnKind,
			Source:        sourceEntry,
			AllowMultiple: false,
		})
	}

	return entries
}
