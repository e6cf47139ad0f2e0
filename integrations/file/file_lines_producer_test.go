package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shpandrak/shpanzip/zip"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, name string, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLines(t *testing.T) {
	path := writeLines(t, "names.txt", "Wolverine\nStorm\nColossus\n")
	require.Equal(
		t,
		[][]byte{[]byte("Wolverine"), []byte("Storm"), []byte("Colossus")},
		zip.MustCollect(Lines(path)),
	)
}

func TestLinesMissingFileIsEmpty(t *testing.T) {
	require.Empty(t, zip.MustCollect(Lines(filepath.Join(t.TempDir(), "missing.txt"))))
}

func TestLinesEmitBeforeOpen(t *testing.T) {
	_, err := Lines(writeLines(t, "a.txt", "a\n")).Emit(context.Background())
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestZipLinesOfTwoFiles(t *testing.T) {
	names := writeLines(t, "names.txt", "Wolverine\nStorm\nColossus\nRogue\n")
	heights := writeLines(t, "heights.txt", "160\n180\n226\n")

	tuples, err := zip.Collect[zip.Tuple3[int, []byte, []byte]](
		context.Background(),
		zip.NewZip3(zip.Range(1, 100), Lines(names), Lines(heights)),
	)
	require.NoError(t, err)
	require.Equal(
		t,
		[]zip.Tuple3[int, []byte, []byte]{
			zip.NewTuple3(1, []byte("Wolverine"), []byte("160")),
			zip.NewTuple3(2, []byte("Storm"), []byte("180")),
			zip.NewTuple3(3, []byte("Colossus"), []byte("226")),
		},
		tuples,
	)
}
