package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"goscore/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// DataWriter writes tables to Excel or CSV files
type DataWriter struct {
	filePath string
	fileType string
	sheet    string
}

// NewDataWriter creates a writer whose format follows the file extension
func NewDataWriter(filePath string, config Config) *DataWriter {
	return &DataWriter{filePath: filePath, fileType: DetectFileType(filePath), sheet: config.sheet()}
}

// WriteData writes the header row then one line per row. Missing cells are
// written empty.
func (w *DataWriter) WriteData(table *dataset.Table) error {
	start := time.Now()
	if dir := filepath.Dir(w.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	records := toRecords(table)

	var err error
	switch w.fileType {
	case FileTypeCSV:
		err = w.writeCSV(records)
	case FileTypeXLSX:
		err = w.writeExcel(records)
	default:
		err = fmt.Errorf("unsupported file type: %s", w.fileType)
	}
	if err != nil {
		return err
	}

	log.Printf("[DataWriter] %s written in %.2fms (%d columns, %d rows)",
		w.filePath, float64(time.Since(start).Nanoseconds())/1e6, len(table.Columns), len(table.Rows))
	return nil
}

func toRecords(table *dataset.Table) [][]string {
	headers := table.Headers()
	records := make([][]string, 0, len(table.Rows)+1)
	records = append(records, headers)
	for _, row := range table.Rows {
		record := make([]string, len(headers))
		for i, key := range headers {
			record[i] = row[key]
		}
		records = append(records, record)
	}
	return records
}

func (w *DataWriter) writeCSV(records [][]string) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

func (w *DataWriter) writeExcel(records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if w.sheet != defaultSheet {
		index, err := f.NewSheet(w.sheet)
		if err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", w.sheet, err)
		}
		f.SetActiveSheet(index)
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(record))
		for j, v := range record {
			values[j] = v
		}
		if err := f.SetSheetRow(w.sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}
