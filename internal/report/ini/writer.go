// Package ini renders the Ansible INI inventory consumed by the Kubernetes
// and Slurm playbooks.
package ini

import (
	"fmt"
	"os"
	"strings"

	"inventory-tool/internal/model"
)

// fence is the separator line around block headings.
const fence = "##########"

// Writer implements report.ReportWriter for the INI inventory format.
type Writer struct{}

// NewWriter creates a new INI inventory writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "ini"
}

// Write renders the inventory and overwrites outputPath with it.
// The path is used as-is.
func (w *Writer) Write(inv *model.Inventory, layout *model.Layout, outputPath string) error {
	if inv == nil {
		return fmt.Errorf("inventory is nil")
	}
	if layout == nil {
		return fmt.Errorf("layout is nil")
	}

	if err := os.WriteFile(outputPath, []byte(Render(inv, layout)), 0644); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}

// Render returns the INI text of inv laid out by layout.
func Render(inv *model.Inventory, layout *model.Layout) string {
	var b strings.Builder
	for _, block := range layout.Blocks {
		renderBlock(&b, inv, block)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, inv *model.Inventory, block model.Block) {
	b.WriteString(heading(block.Title))

	if block.Hosts {
		for _, rec := range inv.All() {
			fmt.Fprintf(b, "%s ansible_host=%s ip=%s\n", rec.Name, rec.Address, rec.Address)
		}
		b.WriteString("\n")
	}

	for _, g := range block.Groups {
		renderGroup(b, inv, g)
	}

	if block.Vars != nil {
		fmt.Fprintf(b, "[%s:vars]\n", block.Vars.Group)
		for _, kv := range block.Vars.Vars {
			fmt.Fprintf(b, "%s=%s\n", kv.Key, kv.Value)
		}
	}
}

func renderGroup(b *strings.Builder, inv *model.Inventory, g model.Group) {
	if g.IsChildren() {
		fmt.Fprintf(b, "[%s:children]\n", g.Name)
		for _, child := range g.Children {
			b.WriteString(child + "\n")
		}
	} else {
		fmt.Fprintf(b, "[%s]\n", g.Name)
		for _, rec := range inv.Records(g.Roles...) {
			b.WriteString(rec.Name + "\n")
		}
	}
	b.WriteString("\n")
}

func heading(title string) string {
	return fence + "\n# " + title + "\n" + fence + "\n"
}
