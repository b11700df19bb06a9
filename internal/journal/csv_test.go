package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/model"
)

func TestWriteLines(t *testing.T) {
	lines, err := Build([]model.Transaction{
		tx(date(2025, 11, 1), "Cash", "Revenue", "5000000", "Penjualan jasa A"),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, lines))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"entry_id", "date", "account", "debit", "credit", "description"}, records[0])
	assert.Equal(t, []string{"2025-11-001a", "2025-11-01", "Cash", "5000000.00", "0.00", "Penjualan jasa A"}, records[1])
	assert.Equal(t, []string{"2025-11-001b", "2025-11-01", "Revenue", "0.00", "5000000.00", "Penjualan jasa A"}, records[2])
}

func TestWriteLines_SpecialCharacters(t *testing.T) {
	line := model.JournalLine{
		EntryID:     "2025-11-004a",
		Date:        date(2025, 11, 15),
		Account:     "Cash",
		Description: `ACME CONSULTING, "Invoice 1042" & more`,
		Debit:       dec("3500"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, []model.JournalLine{line}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, line.Description, records[1][colDesc])
}

func TestMarshalLine_Fixed2(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"4", "4.00"},
		{"127.5", "127.50"},
		{"0.1", "0.10"},
		{"42.99", "42.99"},
	}
	for _, tt := range tests {
		row := MarshalLine(model.JournalLine{Date: date(2025, 11, 1), Debit: dec(tt.input)})
		assert.Equal(t, tt.want, row[colDebit], "input %q", tt.input)
		assert.Equal(t, "0.00", row[colCredit])
	}
}

func TestWriteLines_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}
