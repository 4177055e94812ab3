package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportService turns a raw sheet snapshot into a downloadable XLSX file.
type ExportService struct {
	sheets *SheetsService
}

// NewExportService creates an ExportService.
func NewExportService(sheets *SheetsService) *ExportService {
	return &ExportService{sheets: sheets}
}

// ExportItemsXLSX fetches the item sheet and renders it cell-for-cell into
// a workbook.
func (e *ExportService) ExportItemsXLSX(ctx context.Context) ([]byte, error) {
	vr, err := e.sheets.GetValues(ctx, e.sheets.Config().ItemSheet)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for r, row := range vr.Values {
		for c, v := range row {
			if strings.TrimSpace(v) == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
