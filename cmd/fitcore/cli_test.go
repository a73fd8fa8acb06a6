package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitcore/internal/verification/models"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVerify_Args(t *testing.T) {
	out, _, err := execute(t, "", "verify", "fit2024-verify", "FAKE-CODE")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "VALID"))
	assert.Contains(t, lines[0], "FIT2024-VERIFY")
	assert.Contains(t, lines[0], "Core Protein")
	assert.True(t, strings.HasPrefix(lines[1], "INVALID"))
	assert.Contains(t, lines[1], models.NotFoundMessage)
}

func TestVerify_StdinJSON(t *testing.T) {
	out, errOut, err := execute(t, "  FIT2024-VERIFY \n\nabc123\n", "--json", "verify")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Please enter a verification code")

	dec := json.NewDecoder(strings.NewReader(out))
	var first, second models.Result
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Equal(t, "FIT2024-VERIFY", first.Code)
	assert.True(t, first.Valid)
	assert.Equal(t, models.NotFound("abc123"), second)
}

func TestVerify_CustomCodesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"t\"\ncodes:\n  - code: LOCAL-1\n    valid: true\n    product: Shaker\n    message: ok\n"), 0o600))

	out, _, err := execute(t, "", "--codes-file", path, "verify", "local-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Shaker")

	_, _, err = execute(t, "", "--codes-file", filepath.Join(t.TempDir(), "missing.yaml"), "verify", "x")
	assert.Error(t, err)
}

func TestSamples(t *testing.T) {
	out, _, err := execute(t, "", "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "FIT2024-VERIFY\tCore Protein")
	assert.NotContains(t, out, "FIT2023-RECALL")
}

func TestProductsAndCategories(t *testing.T) {
	out, _, err := execute(t, "", "--json", "products", "--category", "Protein")
	require.NoError(t, err)

	var products []struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "Protein", p.Category)
	}

	out, _, err = execute(t, "", "categories")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "All\n"))
}
