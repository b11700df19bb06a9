package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibook-dev/minibook/internal/model"
	"github.com/minibook-dev/minibook/internal/report"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Toko Maju")
	cfg.Classification.Rules = []RuleConfig{
		{Keywords: []string{"prepaid", "dibayar dimuka"}, Type: "asset"},
	}
	cfg.Log.Format = "json"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "Rp", cfg.Currency.Symbol)
	assert.Equal(t, ".", cfg.Currency.Thousands)
	assert.Equal(t, int32(0), cfg.Currency.Places)
	assert.Equal(t, "0.000001", cfg.Tolerance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Classification.Rules)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(""), cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Warung\ncurrency:\n  symbol: IDR\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Warung", cfg.Business.Name)
	assert.Equal(t, "IDR", cfg.Currency.Symbol)
	assert.Equal(t, ".", cfg.Currency.Thousands)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad type", "classification:\n  rules:\n    - keywords: [x]\n      type: income\n", "unknown type"},
		{"no keywords", "classification:\n  rules:\n    - type: asset\n", "no keywords"},
		{"bad tolerance", "tolerance: lots\n", "tolerance"},
		{"negative tolerance", "tolerance: \"-1\"\n", "tolerance"},
		{"bad log format", "log:\n  format: xml\n", "log.format"},
		{"bad yaml", "business: [\n", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Test Biz")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "symbol: Rp")
	assert.Contains(t, contents, "format: console")
	assert.NotContains(t, contents, "rules:")
}

func TestClassifier(t *testing.T) {
	cfg := Default("")
	cfg.Classification.Rules = []RuleConfig{{Keywords: []string{"Prepaid"}, Type: "ASSET"}}

	rules := cfg.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, model.AccountTypeAsset, rules[0].Type)

	c, err := cfg.Classifier()
	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeAsset, c.Classify("Prepaid Insurance"))
	assert.Equal(t, model.AccountTypeRevenue, c.Classify("Sales"))
}

func TestToleranceValue(t *testing.T) {
	cfg := Default("")
	assert.True(t, cfg.ToleranceValue().Equal(report.DefaultTolerance))

	cfg.Tolerance = "0.01"
	assert.True(t, cfg.ToleranceValue().Equal(decimal.RequireFromString("0.01")))

	cfg.Tolerance = ""
	assert.True(t, cfg.ToleranceValue().Equal(report.DefaultTolerance))
}

func TestMoney(t *testing.T) {
	cfg := Default("")
	assert.Equal(t, report.DefaultMoney(), cfg.Money())
	assert.Equal(t, "Rp 5.000.000", cfg.Money().Format(decimal.RequireFromString("5000000")))
}
