package excel

import (
	"path/filepath"
	"strings"
)

// File types understood by the adapter
const (
	FileTypeXLSX = "xlsx"
	FileTypeCSV  = "csv"
)

// DetectFileType maps a path to a file type by extension. Anything that is not
// .csv is treated as a workbook.
func DetectFileType(path string) string {
	if strings.ToLower(filepath.Ext(path)) == ".csv" {
		return FileTypeCSV
	}
	return FileTypeXLSX
}

// Summary file headers
const (
	summaryColumn      = "column"
	summaryType        = "type"
	summaryAverage     = "average"
	summaryMedian      = "median"
	summaryDescription = "description"
)
