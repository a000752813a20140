package excel

// Config holds the spreadsheet settings shared by readers and writers
type Config struct {
	// Sheet is the worksheet read from and written to for XLSX files
	Sheet string `json:"sheet"`
}

// DefaultConfig returns sensible defaults for spreadsheet processing
func DefaultConfig() Config {
	return Config{Sheet: "Sheet1"}
}

func (c Config) sheet() string {
	if c.Sheet == "" {
		return DefaultConfig().Sheet
	}
	return c.Sheet
}
