/*
excel.go - Spreadsheet rendering of the monthly report

PURPOSE:
  Turns an aggregated Monthly view into a downloadable .xlsx workbook,
  one sheet named "Work Log": header row, one row per record, TOTAL row.
  Number cells (break minutes, hours, pay) are written as numbers so the
  spreadsheet can be re-summed by the recipient.
*/
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Artifact is a rendered tabular file ready to send to the user.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
}

const (
	sheetName = "Work Log"
	xlsxMIME  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// RenderWorkbook renders a non-empty monthly report as an .xlsx artifact.
func RenderWorkbook(m *Monthly, currency string) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []any{
		"Date", "Weekday", "Start", "End", "Break (min)", "Net hours",
		fmt.Sprintf("Pay (%s)", currency),
	}
	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	rowIdx := 2
	for _, row := range m.Rows {
		netHours, _ := row.NetHours.Float64()
		dailyPay, _ := row.DailyPay.Float64()
		cells := []any{
			row.Date, row.Weekday, row.TimeStart, row.TimeEnd,
			row.BreakMinutes, netHours, dailyPay,
		}
		if err := setRow(f, rowIdx, cells); err != nil {
			return nil, err
		}
		rowIdx++
	}

	totalHours, _ := m.TotalHours.Float64()
	totalPay, _ := m.TotalPay.Float64()
	total := []any{m.TotalLabel(), "", "", "", "", totalHours, totalPay}
	if err := setRow(f, rowIdx, total); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &Artifact{
		Filename: fmt.Sprintf("report_%s_%s.xlsx", m.Month, m.UserCode),
		MIME:     xlsxMIME,
		Data:     buf.Bytes(),
	}, nil
}

func setRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}
