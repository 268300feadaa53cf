// Package timesheet writes the clock ledger as an .xlsx workbook with a
// "Sessions" sheet (one row per completed session plus a total) and a "Log"
// sheet listing every event.
package timesheet

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	SessionsSheet = "Sessions"
	LogSheet      = "Log"

	dayLayout  = "2006-01-02"
	timeLayout = "15:04:05"
)

// IsPath reports whether path names a spreadsheet file.
func IsPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xlsx")
}

// Write stores l at path as a workbook.
func Write(path string, l *domain.Ledger) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SessionsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(LogSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := writeRows(f, SessionsSheet, header, sessionRows(l)); err != nil {
		return err
	}
	if err := writeRows(f, LogSheet, header, logRows(l)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func sessionRows(l *domain.Ledger) [][]any {
	rows := [][]any{{"Day", "Clock in", "Clock out", "Worked", "Hours"}}
	for _, s := range l.Sessions() {
		rows = append(rows, []any{
			s.Start.Local().Format(dayLayout),
			s.Start.Local().Format(timeLayout),
			s.End.Local().Format(timeLayout),
			domain.FormatInterval(s.Duration),
			hours(s.Duration),
		})
	}
	if l.ClockInTime != nil {
		in := l.ClockInTime.Local()
		rows = append(rows, []any{in.Format(dayLayout), in.Format(timeLayout), "open", "", ""})
	}
	return append(rows, []any{"Total", "", "", domain.FormatInterval(l.TotalWorked), hours(l.TotalWorked)})
}

func logRows(l *domain.Ledger) [][]any {
	rows := [][]any{{"#", "ID", "Event", "Time"}}
	for i, e := range l.Events {
		rows = append(rows, []any{i + 1, e.ID, string(e.Type), e.Time.Local().Format(time.RFC3339)})
	}
	return rows
}

func writeRows(f *excelize.File, sheet string, headerStyle int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	return f.SetColWidth(sheet, "A", "E", 14)
}

// hours rounds d to hundredths of an hour.
func hours(d time.Duration) float64 {
	return float64(d.Round(36*time.Second)) / float64(time.Hour)
}
