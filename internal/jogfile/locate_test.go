package jogfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJogfile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocateNearestFirst(t *testing.T) {
	root := t.TempDir()
	far := writeJogfile(t, root, "test a\n  echo far\n")
	nested := filepath.Join(root, "a", "b")
	near := writeJogfile(t, nested, "test a b\n  echo near\n")
	start := filepath.Join(nested, "c")
	require.NoError(t, os.MkdirAll(start, 0o755))

	d, err := Locate(start)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(d.Locations), 2)
	assert.Equal(t, Location{Path: near, Distance: 1}, d.Locations[0])
	assert.Equal(t, Location{Path: far, Distance: 3}, d.Locations[1])
	assert.Equal(t, near, d.Nearest())

	files, err := d.LoadAll()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(files), 2)
	assert.Equal(t, "test", files[0].Tasks[0].Name)
	assert.Equal(t, []string{"a", "b"}, files[0].Tasks[0].Params)
	assert.Equal(t, []string{"a"}, files[1].Tasks[0].Params)
}

func TestLocateFromFilePath(t *testing.T) {
	root := t.TempDir()
	path := writeJogfile(t, root, "x\n")

	d, err := Locate(path)
	require.NoError(t, err)
	assert.Equal(t, path, d.Nearest())
}

func TestLocateIgnoresDirectoryNamedJogfile(t *testing.T) {
	root := t.TempDir()
	start := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(filepath.Join(start, FileName), 0o755))
	path := writeJogfile(t, root, "x\n")

	d, err := Locate(start)
	require.NoError(t, err)
	assert.Equal(t, path, d.Nearest())
}

func TestFilesStopsAtFirstError(t *testing.T) {
	root := t.TempDir()
	writeJogfile(t, root, "  broken\n")
	nested := filepath.Join(root, "child")
	near := writeJogfile(t, nested, "ok\n  true\n")

	d, err := Locate(nested)
	require.NoError(t, err)

	var loaded []string
	var loadErr error
	for f, err := range d.Files() {
		if err != nil {
			loadErr = err
			break
		}
		loaded = append(loaded, f.Path)
	}
	assert.Equal(t, []string{near}, loaded)
	require.Error(t, loadErr)
	assert.True(t, errors.Is(loadErr, ErrParse))

	_, err = d.LoadAll()
	assert.True(t, errors.Is(err, ErrParse))
}

func TestLoadRejectsRedundantTasks(t *testing.T) {
	root := t.TempDir()
	path := writeJogfile(t, root, "greet name\ngreet name\n")

	_, err := Load(Location{Path: path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestLoadAllReportsNearestFailure(t *testing.T) {
	root := t.TempDir()
	writeJogfile(t, root, "  far\n")
	nested := filepath.Join(root, "svc")
	near := writeJogfile(t, nested, "x\nx\n")

	d := &Discovery{Start: nested, Locations: []Location{
		{Path: near, Distance: 0},
		{Path: filepath.Join(root, FileName), Distance: 1},
	}}
	_, err := d.LoadAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), near+":2:")
}
