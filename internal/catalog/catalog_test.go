package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/cluequest/internal/game"
)

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
}

func TestLoadSkipsBadFilesAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b.yaml", "id: beta\ntitle: Beta\nentrance:\n  name: Porch\n")
	write(t, dir, "a.json", `{"id": "alpha", "title": "Alpha", "entrance": {"name": "Door"}}`)
	write(t, dir, "c.yml", "id: alpha\ntitle: Alpha again\nentrance:\n  name: Door\n")
	write(t, dir, "broken.json", "{")
	write(t, dir, "notes.txt", "not a case")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o700))

	cases, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, cases, 2)
	assert.Equal(t, "alpha", cases[0].ID)
	assert.Equal(t, "Alpha", cases[0].Title)
	assert.Equal(t, "beta", cases[1].ID)
}

func TestLoadMissingDirectory(t *testing.T) {
	cases, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.Empty(t, cases)
}

func TestWithBuiltinComesFirst(t *testing.T) {
	cases := WithBuiltin([]*game.Case{{ID: "alpha"}})

	require.Len(t, cases, 2)
	assert.Equal(t, game.ManorID, cases[0].ID)
}
