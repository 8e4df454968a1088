// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/get-papers-list/pkg/types"
)

// SheetName is the worksheet that holds the records in XLSX output.
const SheetName = "Papers"

// WriteXLSX saves records to an Excel workbook at path, one row per record
// under a header row.
func WriteXLSX(path string, records []types.ClassifiedRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, Columns); err != nil {
		return err
	}
	for i, rec := range records {
		if err := setRow(f, i+2, Row(rec)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}
