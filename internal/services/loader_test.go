package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadData_JoinsOnID(t *testing.T) {
	dir := t.TempDir()
	messages := writeFile(t, dir, "messages.csv", `id,message,original,genre
1,help,ayuda,direct
2,food,,news
4,shelter,,direct
`)
	categories := writeFile(t, dir, "categories.csv", `id,categories
1,related-1;request-0
2,related-0;request-1
3,related-1;request-1
`)

	joined, err := LoadData(messages, categories)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "message", "original", "genre", "categories"}, joined.Columns)
	require.Equal(t, 2, joined.NumRows(), "ids 3 and 4 have no counterpart and are excluded")
	assert.Equal(t, "1", joined.Rows[0][0])
	assert.Equal(t, "2", joined.Rows[1][0])
	assert.Equal(t, "related-1;request-0", joined.Rows[0][4])
}

func TestLoadData_MissingMessagesFile(t *testing.T) {
	dir := t.TempDir()
	categories := writeFile(t, dir, "categories.csv", "id,categories\n1,related-1\n")

	_, err := LoadData(filepath.Join(dir, "absent.csv"), categories)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadData_MissingJoinKey(t *testing.T) {
	dir := t.TempDir()
	messages := writeFile(t, dir, "messages.csv", "ident,message\n1,help\n")
	categories := writeFile(t, dir, "categories.csv", "id,categories\n1,related-1\n")

	_, err := LoadData(messages, categories)
	require.Error(t, err)
	assert.ErrorIs(t, err, msgprep.ErrSchemaMismatch)
}

func TestLoadData_MissingCategoriesColumn(t *testing.T) {
	dir := t.TempDir()
	messages := writeFile(t, dir, "messages.csv", "id,message\n1,help\n")
	categories := writeFile(t, dir, "categories.csv", "id,labels\n1,related-1\n")

	_, err := LoadData(messages, categories)
	require.Error(t, err)
	assert.ErrorIs(t, err, msgprep.ErrSchemaMismatch)
	assert.Contains(t, err.Error(), `"categories"`)
}

func TestLoadData_MalformedCSV(t *testing.T) {
	dir := t.TempDir()
	messages := writeFile(t, dir, "messages.csv", "id,message\n1,help\n2\n")
	categories := writeFile(t, dir, "categories.csv", "id,categories\n1,related-1\n")

	_, err := LoadData(messages, categories)
	require.Error(t, err)
	assert.ErrorIs(t, err, msgprep.ErrMalformedData)
}
