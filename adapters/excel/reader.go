package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"goscore/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading Excel and CSV files
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	sheet    string
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(filePath string, config Config) *DataReader {
	return &DataReader{filePath: filePath, fileType: DetectFileType(filePath), sheet: config.sheet()}
}

// ReadData reads data from Excel or CSV files into a table. Columns carry only
// their keys; types and aggregates come from a summary file or profiling.
func (r *DataReader) ReadData() (*dataset.Table, error) {
	log.Printf("[DataReader] Starting to read %s file: %s", r.fileType, r.filePath)

	rows, err := r.readRows()
	if err != nil {
		return nil, err
	}
	return r.processRows(rows)
}

func (r *DataReader) readRows() ([][]string, error) {
	// Check if file exists
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case FileTypeCSV:
		return r.readCSVData()
	case FileTypeXLSX:
		return r.readExcelData()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

// readExcelData reads the configured sheet
func (r *DataReader) readExcelData() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	fileOpenTime := time.Since(startTime)
	log.Printf("[DataReader] Excel file opened in %.2fms", float64(fileOpenTime.Nanoseconds())/1e6)

	readStart := time.Now()
	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.sheet, err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", r.sheet, float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, fmt.Errorf("Excel file must have at least a header row")
	}
	return rows, nil
}

// readCSVData reads CSV data
func (r *DataReader) readCSVData() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	readTime := time.Since(readStart)
	log.Printf("[DataReader] CSV file read in %.2fms (%d rows)", float64(readTime.Nanoseconds())/1e6, len(rows))

	if len(rows) < 1 {
		return nil, fmt.Errorf("CSV file must have at least a header row")
	}
	return rows, nil
}

// processRows converts raw string rows into a table. Empty cells are left out
// of the row so they read back as missing.
func (r *DataReader) processRows(rows [][]string) (*dataset.Table, error) {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	seen := make(map[string]bool, len(headerRow))
	table := &dataset.Table{}

	for i, header := range headerRow {
		key := strings.TrimSpace(header)
		if key == "" {
			continue
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate column header %q", key)
		}
		seen[key] = true
		headers[i] = key
		table.Columns = append(table.Columns, dataset.Column{Key: key})
	}

	table.Rows = make([]dataset.Row, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		rowData := make(dataset.Row, len(table.Columns))
		for j, cell := range row {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			if cell = strings.TrimSpace(cell); cell != "" {
				rowData[headers[j]] = cell
			}
		}
		table.Rows = append(table.Rows, rowData)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(table.Columns), len(table.Rows))

	return table, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
