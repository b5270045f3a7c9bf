// Command levelseed uploads level files into Redis for the redis level source.
//
// Usage:
//
//	levelseed [dir]
//
// Every level<n>.txt in dir (default: the levels bundled with the game) is
// validated and stored under dungeoncrawl:level:<n>.
package main

import (
	"context"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/samdwyer/dungeoncrawl/data"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/level"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	fsys := data.Levels()
	if len(os.Args) > 1 {
		fsys = os.DirFS(os.Args[1])
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Cannot reach redis at %s: %v", cfg.Redis.Addr, err)
	}

	n, err := seed(ctx, fsys, level.NewRedisSource(client))
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Stored %d levels in redis at %s", n, cfg.Redis.Addr)
}

// seed parses every level file in fsys and stores it in dst.
func seed(ctx context.Context, fsys fs.FS, dst *level.RedisSource) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, err
	}

	src := level.NewFSSource(fsys, "seed")
	stored := 0
	for _, entry := range entries {
		n, ok := level.Number(entry.Name())
		if !ok || entry.IsDir() {
			continue
		}
		lvl, err := src.Load(ctx, n)
		if err != nil {
			return stored, err
		}
		if err := dst.Put(ctx, n, lvl); err != nil {
			return stored, err
		}
		log.Printf("Stored level %d (%dx%d)", n, lvl.Grid.Height(), lvl.Grid.Width())
		lvl.Grid.Release()
		stored++
	}
	return stored, nil
}
