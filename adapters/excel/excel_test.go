package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDetectFileType(t *testing.T) {
	assert.Equal(t, FileTypeCSV, DetectFileType("data/rows.CSV"))
	assert.Equal(t, FileTypeXLSX, DetectFileType("rows.xlsx"))
	assert.Equal(t, FileTypeXLSX, DetectFileType("rows"))
}

func TestDataReader_CSV(t *testing.T) {
	path := writeFile(t, "rows.csv", "name, price ,active\nwidget,\"1,250\",yes\n,,\ngadget,,no\n")

	table, err := NewDataReader(path, DefaultConfig()).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "price", "active"}, table.Headers())
	require.Len(t, table.Rows, 2, "blank rows are skipped")
	assert.Equal(t, "1,250", table.Rows[0]["price"])
	assert.True(t, table.Rows[1].Cell("price").IsMissing())
	assert.Equal(t, "no", table.Rows[1]["active"])
}

func TestDataReader_Errors(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "missing.csv"), DefaultConfig()).ReadData()
	assert.Error(t, err)

	path := writeFile(t, "dup.csv", "a,a\n1,2\n")
	_, err = NewDataReader(path, DefaultConfig()).ReadData()
	assert.Error(t, err)

	path = writeFile(t, "empty.csv", "")
	_, err = NewDataReader(path, DefaultConfig()).ReadData()
	assert.Error(t, err)
}

func TestDataReader_ReadSummary(t *testing.T) {
	path := writeFile(t, "summary.csv",
		"Column,Type,Average,Median,Description\nprice,currency,12.5,,Unit price\nactive,bool,,,\n,numeric,1,1,\n")

	columns, err := NewDataReader(path, DefaultConfig()).ReadSummary()
	require.NoError(t, err)
	require.Len(t, columns, 2)

	assert.Equal(t, "price", columns[0].Key)
	assert.Equal(t, dataset.TypeCurrency, columns[0].Type)
	require.NotNil(t, columns[0].Average)
	assert.Equal(t, 12.5, *columns[0].Average)
	assert.Nil(t, columns[0].Median)
	assert.Equal(t, "Unit price", columns[0].Description)
	assert.Equal(t, dataset.TypeBoolean, columns[1].Type)

	bad := writeFile(t, "bad.csv", "name,type\nprice,numeric\n")
	_, err = NewDataReader(bad, DefaultConfig()).ReadSummary()
	assert.Error(t, err)
}

func TestStore_CSVRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(DefaultConfig())

	table := &dataset.Table{
		Columns: []dataset.Column{{Key: "name"}, {Key: "price"}},
		Rows:    []dataset.Row{{"name": "a", "price": "1"}, {"name": "b, c"}},
	}
	table.AppendColumn(dataset.Column{Key: "score", Type: dataset.TypeNumeric},
		[]core.NullFloat{core.Float(0.25), core.Null()})

	path := filepath.Join(t.TempDir(), "out", "scored.csv")
	require.NoError(t, store.WriteTable(ctx, path, table))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,price,score\na,1,0.25\n\"b, c\",,\n", string(content))

	loaded, err := store.ReadTable(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, table.Headers(), loaded.Headers())
	assert.True(t, loaded.Rows[1].Cell("score").IsMissing())
}

func TestStore_XLSXRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(Config{Sheet: "Scores"})

	table := &dataset.Table{
		Columns: []dataset.Column{{Key: "name"}, {Key: "score"}},
		Rows:    []dataset.Row{{"name": "a", "score": "0.5"}, {"name": "b"}},
	}
	path := filepath.Join(t.TempDir(), "scored.xlsx")
	require.NoError(t, store.WriteTable(ctx, path, table))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Scores"}, f.GetSheetList())
	require.NoError(t, f.Close())

	loaded, err := store.ReadTable(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score"}, loaded.Headers())
	require.Len(t, loaded.Rows, 2)
	assert.Equal(t, "0.5", loaded.Rows[0]["score"])
	assert.True(t, loaded.Rows[1].Cell("score").IsMissing())
}

func TestStore_ReadErrorsCarryCode(t *testing.T) {
	store := NewStore(DefaultConfig())
	_, err := store.ReadTable(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.ReadTable(ctx, "ignored.csv")
	assert.ErrorIs(t, err, context.Canceled)
}
