// Package data provides the dungeon levels bundled with the game.
package data

import (
	"embed"
	"io/fs"
)

// dataFS embeds all level files from the levels directory at build time.
//
//go:embed levels/*.txt
var dataFS embed.FS

// Levels returns the embedded filesystem rooted at the levels directory.
func Levels() fs.FS {
	levels, err := fs.Sub(dataFS, "levels")
	if err != nil {
		panic(err)
	}
	return levels
}
