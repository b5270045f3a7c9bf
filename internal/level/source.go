package level

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/data"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Source provides numbered levels, starting at 1.
type Source interface {
	Load(ctx context.Context, n int) (*Level, error)
}

// FSSource reads levels named level<n>.txt from a filesystem.
type FSSource struct {
	fsys fs.FS
	kind string
}

// NewFSSource creates a source over fsys. kind labels the source in traces.
func NewFSSource(fsys fs.FS, kind string) *FSSource {
	return &FSSource{fsys: fsys, kind: kind}
}

// NewDirSource creates a source reading level files from dir on disk.
func NewDirSource(dir string) *FSSource {
	return NewFSSource(os.DirFS(dir), "dir")
}

// NewEmbeddedSource creates a source over the levels bundled with the binary.
func NewEmbeddedSource() *FSSource {
	return NewFSSource(data.Levels(), "embedded")
}

// Load reads and parses level n.
func (s *FSSource) Load(ctx context.Context, n int) (*Level, error) {
	return load(ctx, s.kind, n, func(context.Context) ([]byte, error) {
		raw, err := fs.ReadFile(s.fsys, Name(n))
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, Name(n))
		}
		return raw, err
	})
}

// Count returns how many consecutive levels, starting at 1, the source holds.
func (s *FSSource) Count() int {
	n := 0
	for {
		if _, err := fs.Stat(s.fsys, Name(n+1)); err != nil {
			return n
		}
		n++
	}
}

// load fetches raw level text and parses it inside a level.load span.
func load(ctx context.Context, kind string, n int, fetch func(context.Context) ([]byte, error)) (*Level, error) {
	tracer := telemetry.Tracer("level")
	ctx, span := tracer.Start(ctx, "level.load")
	defer span.End()

	span.SetAttributes(
		attribute.String("level.source", kind),
		attribute.Int("level.number", n),
	)

	if n < 1 {
		err := fmt.Errorf("%w: level %d", ErrNotFound, n)
		span.RecordError(err)
		return nil, err
	}

	raw, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load level %d: %w", n, err)
	}

	lvl, err := Parse(bytes.NewReader(raw))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load level %d: %w", n, err)
	}
	lvl.Number = n

	span.SetAttributes(
		attribute.Int("level.height", lvl.Grid.Height()),
		attribute.Int("level.width", lvl.Grid.Width()),
		attribute.Int("level.monsters", lvl.Grid.Count(world.TileMonster)),
		attribute.Int("level.treasure", lvl.Grid.Count(world.TileTreasure)),
	)

	return lvl, nil
}
