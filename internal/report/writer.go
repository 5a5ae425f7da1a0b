// Package report provides inventory rendering for the inventory tool.
// It defines the ReportWriter interface and provides implementations for
// different output formats including INI, YAML, Excel and HTML.
package report

import (
	"inventory-tool/internal/model"
)

// ReportWriter defines the interface for writing a generated inventory.
type ReportWriter interface {
	// Write renders the inventory using layout and saves it to outputPath.
	// Writers for secondary formats append their file extension.
	//
	// Returns an error if rendering or file writing fails.
	Write(inv *model.Inventory, layout *model.Layout, outputPath string) error

	// Format returns the format identifier for this writer.
	// Values are "ini", "yaml", "excel" and "html".
	Format() string
}
