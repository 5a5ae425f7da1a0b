//go:build ignore
// +build ignore

// This script prints the contents of an inventory workbook for verification.
// Usage: go run scripts/read_excel.go [inventory.xlsx]
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	path := "inventory.xlsx"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer f.Close()

	fmt.Println("📊 Sheets:", f.GetSheetList())
	fmt.Println()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", sheet, err)
			os.Exit(1)
		}

		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  %s (%d rows)\n", sheet, max(len(rows)-1, 0))
		fmt.Println("═══════════════════════════════════════")
		for i, row := range rows {
			fmt.Printf("  %s\n", strings.Join(padRow(row), " | "))
			if i == 0 {
				fmt.Println("  " + strings.Repeat("-", 60))
			}
		}
		fmt.Println()
	}

	fmt.Println("✅ Inventory workbook read successfully")
}

func padRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = fmt.Sprintf("%-16s", cell)
	}
	return out
}
