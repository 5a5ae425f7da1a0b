// Package report provides inventory rendering for the inventory tool.
package report

import (
	"fmt"
	"sort"
	"strings"

	"inventory-tool/internal/report/excel"
	"inventory-tool/internal/report/html"
	"inventory-tool/internal/report/ini"
	"inventory-tool/internal/report/yml"
)

// Registry manages report writers for different formats.
// It provides a centralized way to access report writers by format name.
type Registry struct {
	writers map[string]ReportWriter
}

// NewRegistry creates a new report registry with every built-in writer registered.
// htmlTemplatePath is optional; if empty, the HTML writer will use the embedded default template.
func NewRegistry(htmlTemplatePath string) *Registry {
	r := &Registry{
		writers: make(map[string]ReportWriter),
	}

	r.Register(ini.NewWriter())
	r.Register(yml.NewWriter())
	r.Register(excel.NewWriter())
	r.Register(html.NewWriter(htmlTemplatePath))

	return r
}

// Register adds or replaces the writer for w.Format().
func (r *Registry) Register(w ReportWriter) {
	r.writers[strings.ToLower(w.Format())] = w
}

// Get returns a writer for the specified format.
// Format names are case-insensitive (e.g., "INI", "Ini", "ini" all work).
// Returns an error if the format is not supported.
func (r *Registry) Get(format string) (ReportWriter, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))

	writer, ok := r.writers[normalizedFormat]
	if !ok {
		supported := r.GetAll()
		return nil, fmt.Errorf("unsupported output format %q, supported formats: %s",
			format, strings.Join(supported, ", "))
	}

	return writer, nil
}

// GetAll returns all supported format names in sorted order.
func (r *Registry) GetAll() []string {
	formats := make([]string, 0, len(r.writers))
	for format := range r.writers {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

// Has checks if the specified format is supported.
// Format names are case-insensitive.
func (r *Registry) Has(format string) bool {
	normalizedFormat := strings.ToLower(strings.TrimSpace(format))
	_, ok := r.writers[normalizedFormat]
	return ok
}
