package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"centris-gateway/internal/models"
)

// EncodeXLSX renders the records as a single-sheet workbook. Column layout
// selection follows the same first-record rule as EncodeCSV.
func EncodeXLSX(properties []models.PropertyRecord, sheetName string) ([]byte, error) {
	enhanced := len(properties) > 0 && properties[0].IsEnhanced()

	headers := basicHeaders
	if enhanced {
		headers = enhancedHeaders
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, p := range properties {
		var fields []string
		if enhanced {
			fields = []string{
				p.ID, p.Address, p.District, p.Type, p.Price, p.OriginalPrice,
				p.Owner, p.Representative, p.BrokerName, p.BrokerPhone, p.BrokerEmail,
			}
		} else {
			fields = []string{p.Address, p.Price, p.Type, p.City, p.Street}
		}

		for col, value := range fields {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	// Wide enough for addresses without letting one long owner field blow
	// up the whole sheet.
	if err := f.SetColWidth(sheetName, "A", "K", 30); err != nil {
		return nil, fmt.Errorf("failed to set column widths: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
