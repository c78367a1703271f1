package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/moneyreport/internal/config"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Initialized money report at "+dir)

	info, err := os.Stat(filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.FileExists(t, filepath.Join(dir, "data", ".gitkeep"))
	assert.Equal(t, "", readFile(t, filepath.Join(dir, "category_lookup.csv")))
	assert.Equal(t, "out.csv\n", readFile(t, filepath.Join(dir, ".gitignore")))
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)

	_, _, err = execute(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_KeepsExistingLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "category_lookup.csv"), "STARBUCKS,Coffee\n")

	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Equal(t, "STARBUCKS,Coffee\n", readFile(t, filepath.Join(dir, "category_lookup.csv")))
}

func TestInit_AppendsToExistingGitignore(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "node_modules/\n*.log")

	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Equal(t, "node_modules/\n*.log\nout.csv\n", readFile(t, filepath.Join(dir, ".gitignore")))
}

func TestInit_GitignoreAlreadyListsOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".gitignore"), "out.csv\nvendor/\n")

	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	assert.Equal(t, "out.csv\nvendor/\n", readFile(t, filepath.Join(dir, ".gitignore")))
}

func TestInit_ThenRunNeedsStatements(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, "init", dir)
	require.NoError(t, err)

	chdir(t, dir)
	_, _, err = execute(t, "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no statement files")

	writeFile(t, filepath.Join(dir, "data", "jan.csv"), header+"01/01/2024,Unknown Shop,10.00\n")
	stdout, _, err := execute(t, "run")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unknown Shop\n1\n")
	assert.FileExists(t, filepath.Join(dir, "out.csv"))
}
