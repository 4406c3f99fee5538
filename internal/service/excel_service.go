package service

import (
	"fmt"
	"os"
	"path/filepath"

	"ledger-api/internal/models"

	"github.com/xuri/excelize/v2"
)

type ExcelService struct{}

func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ExportProfitAndLoss renders a profit and loss report into a two-column
// Excel sheet mirroring the JSON document: section headers, per-account data
// rows, and summary subtotals.
func (s *ExcelService) ExportProfitAndLoss(report *models.Report, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Profit and Loss"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), report.Header.ReportName)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), headerStyle)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Period")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row),
		fmt.Sprintf("%s - %s", report.Header.StartPeriod, report.Header.EndPeriod))
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Currency")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), report.Header.Currency)
	row += 2

	for _, section := range report.Rows.Row {
		if section.Header != nil && len(section.Header.ColData) > 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), section.Header.ColData[0].Value)
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
			row++
		}
		if section.Rows != nil {
			for _, dataRow := range section.Rows.Row {
				if len(dataRow.ColData) < 2 {
					continue
				}
				f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), dataRow.ColData[0].Value)
				f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), dataRow.ColData[1].Value)
				row++
			}
		}
		if len(section.Summary.ColData) >= 2 {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), section.Summary.ColData[0].Value)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), section.Summary.ColData[1].Value)
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), summaryStyle)
			row++
		}
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "B", 18)

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(filePath)
}
