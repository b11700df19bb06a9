package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/model"
)

func TestWriteAccounts(t *testing.T) {
	accts := []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Revenue", Type: model.AccountTypeRevenue},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accts))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "account,classification,normal_side", lines[0])
	assert.Equal(t, "Cash,asset,debit", lines[1])
	assert.Equal(t, "Revenue,revenue,credit", lines[2])
}

func TestMarshalAccount_QuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, []model.Account{{Name: "Owner, Capital", Type: model.AccountTypeEquity}}))
	assert.Contains(t, buf.String(), `"Owner, Capital",equity,credit`)
}

func TestWriteAccounts_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, nil))
	assert.Equal(t, "account,classification,normal_side\n", buf.String())
}
