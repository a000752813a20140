package excel

import (
	"fmt"
	"log"
	"strings"

	"goscore/domain/dataset"
	"goscore/internal/extract"
)

// ReadSummary reads a column summary file. The file needs a "column" header;
// type, average, median and description are optional and may be blank per row.
func (r *DataReader) ReadSummary() ([]dataset.Column, error) {
	log.Printf("[DataReader] Reading column summary: %s", r.filePath)

	rows, err := r.readRows()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for i, header := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := index[summaryColumn]; !ok {
		return nil, fmt.Errorf("summary file %s has no %q header", r.filePath, summaryColumn)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var columns []dataset.Column
	for _, row := range rows[1:] {
		key := field(row, summaryColumn)
		if key == "" {
			continue
		}

		col := dataset.Column{Key: key, Description: field(row, summaryDescription)}
		if t := field(row, summaryType); t != "" {
			col.Type = dataset.ParseColumnType(t)
		}
		if v := extract.ParseNumeric(field(row, summaryAverage)); v.Valid {
			col.Average = dataset.Float64(v.Value)
		}
		if v := extract.ParseNumeric(field(row, summaryMedian)); v.Valid {
			col.Median = dataset.Float64(v.Value)
		}
		columns = append(columns, col)
	}

	log.Printf("[DataReader] Column summary loaded (%d columns)", len(columns))
	return columns, nil
}
