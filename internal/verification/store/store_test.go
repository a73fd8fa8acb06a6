package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcore/internal/verification/models"
	"fitcore/pkg/platform/sentinel"
)

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, table.Version())
	assert.Greater(t, table.Len(), 0)

	t.Run("shipped codes are unique ignoring case", func(t *testing.T) {
		assert.Empty(t, table.Duplicates())
		seen := make(map[string]string)
		for _, rec := range table.Records() {
			key := strings.ToLower(rec.Code)
			prev, dup := seen[key]
			assert.False(t, dup, "code %q collides with %q", rec.Code, prev)
			seen[key] = rec.Code
		}
	})

	t.Run("contains the documented sample record", func(t *testing.T) {
		rec, ok := table.Lookup("FIT2024-VERIFY")
		require.True(t, ok)
		assert.Equal(t, models.Record{
			Code:    "FIT2024-VERIFY",
			Valid:   true,
			Product: "Core Protein",
			Message: "✅ Verified",
		}, rec)
	})
}

func TestTable_Lookup(t *testing.T) {
	table, err := NewTable("test", []models.Record{
		{Code: "ABC-123", Valid: true, Product: "Core Protein", Message: "ok"},
		{Code: "OLD-1", Valid: false, Product: "Old Batch", Message: "expired"},
	})
	require.NoError(t, err)

	t.Run("case-insensitive exact match", func(t *testing.T) {
		for _, q := range []string{"ABC-123", "abc-123", "AbC-123"} {
			rec, ok := table.Lookup(q)
			require.True(t, ok, q)
			assert.Equal(t, "ABC-123", rec.Code)
		}
	})

	t.Run("no prefix or partial matching", func(t *testing.T) {
		for _, q := range []string{"ABC", "ABC-1234", "BC-123", ""} {
			_, ok := table.Lookup(q)
			assert.False(t, ok, q)
		}
	})

	t.Run("known-invalid records are still matched", func(t *testing.T) {
		rec, ok := table.Lookup("old-1")
		require.True(t, ok)
		assert.False(t, rec.Valid)
		assert.Equal(t, "expired", rec.Message)
	})
}

func TestNewTable_FirstDuplicateWins(t *testing.T) {
	table, err := NewTable("dup", []models.Record{
		{Code: "DUP-1", Valid: true, Product: "First", Message: "first"},
		{Code: "dup-1", Valid: false, Product: "Second", Message: "second"},
	})
	require.NoError(t, err)

	rec, ok := table.Lookup("Dup-1")
	require.True(t, ok)
	assert.Equal(t, "First", rec.Product)
	assert.Equal(t, []string{"dup-1"}, table.Duplicates())
	assert.Equal(t, 2, table.Len())
}

func TestNewTable_RejectsBadCodes(t *testing.T) {
	for name, code := range map[string]string{
		"empty":      "",
		"blank":      "   ",
		"whitespace": " ABC ",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewTable("bad", []models.Record{{Code: code}})
			assert.ErrorIs(t, err, sentinel.ErrInvalidData)
		})
	}
}

func TestTable_IsImmutable(t *testing.T) {
	input := []models.Record{{Code: "ABC", Valid: true, Product: "P", Message: "m"}}
	table, err := NewTable("v", input)
	require.NoError(t, err)

	input[0].Product = "mutated"
	records := table.Records()
	records[0].Valid = false

	rec, ok := table.Lookup("abc")
	require.True(t, ok)
	assert.Equal(t, "P", rec.Product)
	assert.True(t, rec.Valid)
}

func TestLoad(t *testing.T) {
	t.Run("parses yaml document", func(t *testing.T) {
		table, err := Load(strings.NewReader(`
version: "1"
codes:
  - code: X-1
    valid: true
    product: Shaker
    message: ok
`))
		require.NoError(t, err)
		assert.Equal(t, "1", table.Version())
		assert.Equal(t, 1, table.Len())
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Load(strings.NewReader("version: \"1\"\nentries: []\n"))
		assert.Error(t, err)
	})

	t.Run("empty input is invalid data", func(t *testing.T) {
		_, err := Load(strings.NewReader(""))
		assert.ErrorIs(t, err, sentinel.ErrInvalidData)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"9\"\ncodes:\n  - code: F-9\n    valid: true\n    product: Band\n    message: ok\n"), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "9", table.Version())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
