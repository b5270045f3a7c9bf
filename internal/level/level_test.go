package level

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func TestParsePackedRows(t *testing.T) {
	lvl, err := ParseString("3 3\n1 1\n--!\n-o-\n$-M\n")
	require.NoError(t, err)

	assert.Equal(t, 3, lvl.Grid.Height())
	assert.Equal(t, 3, lvl.Grid.Width())
	assert.Equal(t, world.Pos{Row: 1, Col: 1}, lvl.Player.Pos())
	assert.Equal(t, 0, lvl.Player.Treasure)
	assert.Equal(t, []string{"--!", "-o-", "$-M"}, lvl.Grid.Rows())
}

func TestParseSeparatedGlyphs(t *testing.T) {
	lvl, err := ParseString("2 3\n0 2\n- - +\n? @ -\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"--o", "?@-"}, lvl.Grid.Rows())
}

func TestParseForcesSinglePlayer(t *testing.T) {
	lvl, err := ParseString("2 2\n1 0\no-\n--\n")
	require.NoError(t, err)

	assert.Equal(t, 1, lvl.Grid.Count(world.TilePlayer))
	assert.Equal(t, world.TilePlayer, lvl.Grid.At(world.Pos{Row: 1, Col: 0}))
	assert.Equal(t, world.TileOpen, lvl.Grid.At(world.Pos{Row: 0, Col: 0}))
}

func TestParseIgnoresTrailingContent(t *testing.T) {
	lvl, err := ParseString("1 2\n0 0\n-- extra stuff\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"o-"}, lvl.Grid.Rows())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing width", "3"},
		{"missing start", "3 3\n"},
		{"non numeric", "a 3\n0 0\n---"},
		{"zero height", "0 3\n0 0\n"},
		{"negative width", "3 -1\n0 0\n"},
		{"start outside", "1 1\n2 0\n-"},
		{"too few cells", "2 2\n0 0\n---"},
		{"unknown glyph", "1 2\n0 0\n-#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseUnknownGlyphWrapsTileError(t *testing.T) {
	_, err := ParseString("1 1\n0 0\nX")
	assert.ErrorIs(t, err, world.ErrUnknownTile)
}

func TestFormatRoundTrip(t *testing.T) {
	input := "2 4\n1 3\n$+M!\n-@?o\n"
	lvl, err := ParseString(input)
	require.NoError(t, err)

	assert.Equal(t, input, Format(lvl))
}

func TestNameAndNumber(t *testing.T) {
	assert.Equal(t, "level7.txt", Name(7))

	n, ok := Number("level12.txt")
	assert.True(t, ok)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"level0.txt", "levelx.txt", "map1.txt", "level3.dat"} {
		_, ok := Number(bad)
		assert.False(t, ok, bad)
	}
}

func TestFSSourceLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"level1.txt": {Data: []byte("1 2\n0 0\n-?\n")},
		"level2.txt": {Data: []byte("1 2\n0 1\n!-\n")},
		"level4.txt": {Data: []byte("1 1\n0 0\n-\n")},
	}
	src := NewFSSource(fsys, "test")
	ctx := context.Background()

	lvl, err := src.Load(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, lvl.Number)
	assert.Equal(t, []string{"!o"}, lvl.Grid.Rows())

	_, err = src.Load(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = src.Load(ctx, 0)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, src.Count())
}

func TestDirSourceLoad(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, Name(1)), []byte("1 3\n0 1\n$-M\n"), 0o644)
	require.NoError(t, err)

	lvl, err := NewDirSource(dir).Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"$oM"}, lvl.Grid.Rows())

	_, err = NewDirSource(filepath.Join(dir, "missing")).Load(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmbeddedLevelsAreValid(t *testing.T) {
	src := NewEmbeddedSource()
	count := src.Count()
	require.GreaterOrEqual(t, count, 1, "no embedded levels")

	for n := 1; n <= count; n++ {
		lvl, err := src.Load(context.Background(), n)
		require.NoError(t, err, "level %d", n)

		assert.Equal(t, 1, lvl.Grid.Count(world.TilePlayer), "level %d", n)
		assert.Equal(t, world.TilePlayer, lvl.Grid.At(lvl.Player.Pos()), "level %d", n)
		assert.Positive(t, lvl.Grid.Count(world.TileDoor)+lvl.Grid.Count(world.TileExit),
			"level %d has no way out", n)
	}
}
