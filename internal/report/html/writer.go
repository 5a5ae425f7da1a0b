// Package html provides HTML inventory overviews for the inventory tool.
// It implements the report.ReportWriter interface to generate a .html page
// with role counts, hosts, group membership and unclassified machines.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"inventory-tool/internal/model"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// maskedValue replaces secret variable values in the page.
const maskedValue = "********"

// Writer implements report.ReportWriter for HTML format.
type Writer struct {
	templatePath string // User-defined template path (optional)
}

// TemplateData holds all data passed to the HTML template.
type TemplateData struct {
	Title        string
	Roles        []*RoleData
	Total        int
	Blocks       []*BlockData
	Unclassified []model.MachineRecord
}

// RoleData holds the record count of one role.
type RoleData struct {
	Name  string
	Count int
}

// BlockData represents a layout block formatted for template rendering.
type BlockData struct {
	Title  string
	Hosts  []*HostData
	Groups []*GroupData
	Vars   *VarsData
}

// HostData represents a host line.
type HostData struct {
	Name    string
	Address string
	Role    string
}

// GroupData represents a group and its members.
type GroupData struct {
	Name     string
	Children bool
	Members  []string
}

// VarsData represents a vars section.
type VarsData struct {
	Group string
	Vars  []model.KeyVal
}

// NewWriter creates a new HTML inventory writer.
// If templatePath is empty, the embedded default template will be used.
func NewWriter(templatePath string) *Writer {
	return &Writer{
		templatePath: templatePath,
	}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "html"
}

// Write generates an HTML page from the inventory.
func (w *Writer) Write(inv *model.Inventory, layout *model.Layout, outputPath string) error {
	if inv == nil {
		return fmt.Errorf("inventory is nil")
	}
	if layout == nil {
		return fmt.Errorf("layout is nil")
	}

	// Ensure output path has .html extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".html") {
		outputPath = outputPath + ".html"
	}

	tmpl, err := w.loadTemplate()
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}

	data := prepareTemplateData(inv, layout)

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return nil
}

// loadTemplate loads the HTML template.
// It first tries to load a user-defined template, then falls back to the embedded default.
func (w *Writer) loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"join": strings.Join,
	}

	if w.templatePath != "" {
		if _, err := os.Stat(w.templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(w.templatePath)).Funcs(funcMap).ParseFiles(w.templatePath)
			if err != nil {
				return nil, fmt.Errorf("failed to parse user template: %w", err)
			}
			return tmpl, nil
		}
		// User template not found, fall through to default
	}

	tmpl, err := template.New("inventory.html").Funcs(funcMap).ParseFS(embeddedTemplates, "templates/inventory.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// prepareTemplateData converts the inventory and layout to TemplateData.
func prepareTemplateData(inv *model.Inventory, layout *model.Layout) *TemplateData {
	counts := inv.RoleCounts()
	roles := make([]*RoleData, 0, len(counts))
	for _, role := range inv.Roles() {
		roles = append(roles, &RoleData{Name: role, Count: counts[role]})
	}

	data := &TemplateData{
		Title:        "Cluster Inventory",
		Roles:        roles,
		Total:        inv.Count(),
		Unclassified: inv.Unclassified(),
	}

	for _, block := range layout.Blocks {
		bd := &BlockData{Title: block.Title}

		if block.Hosts {
			for _, role := range inv.Roles() {
				for _, rec := range inv.Records(role) {
					bd.Hosts = append(bd.Hosts, &HostData{Name: rec.Name, Address: rec.Address, Role: role})
				}
			}
		}

		for _, g := range block.Groups {
			gd := &GroupData{Name: g.Name, Children: g.IsChildren()}
			if g.IsChildren() {
				gd.Members = append(gd.Members, g.Children...)
			} else {
				for _, rec := range inv.Records(g.Roles...) {
					gd.Members = append(gd.Members, rec.Name)
				}
			}
			bd.Groups = append(bd.Groups, gd)
		}

		if block.Vars != nil {
			vd := &VarsData{Group: block.Vars.Group}
			for _, kv := range block.Vars.Vars {
				if isSecret(kv.Key) {
					kv.Value = maskedValue
				}
				vd.Vars = append(vd.Vars, kv)
			}
			bd.Vars = vd
		}

		data.Blocks = append(data.Blocks, bd)
	}

	return data
}

// isSecret reports whether a variable holds a credential.
func isSecret(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "password") || strings.Contains(key, "secret") || strings.Contains(key, "token")
}
