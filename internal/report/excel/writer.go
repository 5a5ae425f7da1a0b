// Package excel provides Excel inventory generation for the inventory tool.
// It implements the report.ReportWriter interface to generate .xlsx files
// listing hosts with their roles and the membership of every group.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"inventory-tool/internal/model"
)

const (
	// Sheet names
	sheetHosts        = "Hosts"
	sheetGroups       = "Groups"
	sheetUnclassified = "Unclassified"

	// Default sheet to remove
	defaultSheet = "Sheet1"

	// Colors (RGB without #)
	colorHeaderBg  = "4472C4" // Blue background for header
	colorHeaderFg  = "FFFFFF" // White text for header
	colorWarningBg = "FFEB9C" // Yellow background for unclassified rows

	defaultColWidth = 20.0
	wideColWidth    = 30.0
)

// Writer implements report.ReportWriter for Excel format.
type Writer struct{}

// NewWriter creates a new Excel inventory writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Format returns the format identifier for this writer.
func (w *Writer) Format() string {
	return "excel"
}

// Write generates an Excel workbook from the inventory.
func (w *Writer) Write(inv *model.Inventory, layout *model.Layout, outputPath string) error {
	if inv == nil {
		return fmt.Errorf("inventory is nil")
	}
	if layout == nil {
		return fmt.Errorf("layout is nil")
	}

	// Ensure output path has .xlsx extension
	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: colorHeaderFg},
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorHeaderBg}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := w.createHostsSheet(f, inv, headerStyle); err != nil {
		return fmt.Errorf("failed to create hosts sheet: %w", err)
	}

	if err := w.createGroupsSheet(f, inv, layout, headerStyle); err != nil {
		return fmt.Errorf("failed to create groups sheet: %w", err)
	}

	if len(inv.Unclassified()) > 0 {
		if err := w.createUnclassifiedSheet(f, inv, headerStyle); err != nil {
			return fmt.Errorf("failed to create unclassified sheet: %w", err)
		}
	}

	// Sheet1 may already be gone; nothing to do then.
	_ = f.DeleteSheet(defaultSheet)

	idx, err := f.GetSheetIndex(sheetHosts)
	if err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	return nil
}

// createHostsSheet lists every classified host in role order.
func (w *Writer) createHostsSheet(f *excelize.File, inv *model.Inventory, headerStyle int) error {
	if _, err := f.NewSheet(sheetHosts); err != nil {
		return err
	}

	if err := writeHeader(f, sheetHosts, []string{"Name", "Address", "Role"}, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, role := range inv.Roles() {
		for _, rec := range inv.Records(role) {
			if err := setRow(f, sheetHosts, row, rec.Name, rec.Address, role); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(sheetHosts, "A", "C", defaultColWidth); err != nil {
		return err
	}
	return f.SetPanes(sheetHosts, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// createGroupsSheet lists group membership in layout order, one member per row.
func (w *Writer) createGroupsSheet(f *excelize.File, inv *model.Inventory, layout *model.Layout, headerStyle int) error {
	if _, err := f.NewSheet(sheetGroups); err != nil {
		return err
	}

	if err := writeHeader(f, sheetGroups, []string{"Block", "Group", "Kind", "Member"}, headerStyle); err != nil {
		return err
	}

	row := 2
	for _, block := range layout.Blocks {
		for _, g := range block.Groups {
			kind := "hosts"
			members := g.Children
			if g.IsChildren() {
				kind = "children"
			} else {
				members = nil
				for _, rec := range inv.Records(g.Roles...) {
					members = append(members, rec.Name)
				}
			}

			if len(members) == 0 {
				if err := setRow(f, sheetGroups, row, block.Title, g.Name, kind, ""); err != nil {
					return err
				}
				row++
				continue
			}
			for _, m := range members {
				if err := setRow(f, sheetGroups, row, block.Title, g.Name, kind, m); err != nil {
					return err
				}
				row++
			}
		}
	}

	if err := f.SetColWidth(sheetGroups, "A", "A", wideColWidth); err != nil {
		return err
	}
	return f.SetColWidth(sheetGroups, "B", "D", defaultColWidth)
}

// createUnclassifiedSheet lists machines that matched no role.
func (w *Writer) createUnclassifiedSheet(f *excelize.File, inv *model.Inventory, headerStyle int) error {
	if _, err := f.NewSheet(sheetUnclassified); err != nil {
		return err
	}

	if err := writeHeader(f, sheetUnclassified, []string{"Name", "Address"}, headerStyle); err != nil {
		return err
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{colorWarningBg}, Pattern: 1},
	})
	if err != nil {
		return err
	}

	unclassified := inv.Unclassified()
	for i, rec := range unclassified {
		if err := setRow(f, sheetUnclassified, i+2, rec.Name, rec.Address); err != nil {
			return err
		}
	}
	if len(unclassified) > 0 {
		last := fmt.Sprintf("B%d", len(unclassified)+1)
		if err := f.SetCellStyle(sheetUnclassified, "A2", last, rowStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetUnclassified, "A", "B", defaultColWidth)
}

// writeHeader writes a styled header row.
func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

// setRow writes string values into row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}
