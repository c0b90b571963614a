// Package transform provides the rename / encode / value-remap page.
package transform

// TransformData is the template data for the transform page.
type TransformData struct {
	Columns        []string
	SelectedColumn string
	UniqueValues   []string
	Mappings       map[string]map[string]string
}
