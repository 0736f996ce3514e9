package tui

import (
	"path"
	"strings"
)

// defaultIcon is shown for thumbnails without a glyph.
const defaultIcon = "📦"

var iconGlyphs = map[string]string{
	"portfolio":       "📁",
	"resume":          "📄",
	"github":          "🐙",
	"linkedin":        "💼",
	"x":               "🐦",
	"facebook":        "📘",
	"fullscreen":      "🔲",
	"exit-fullscreen": "🔳",
}

// Icon resolves a thumbnail file name (e.g. "github.webp") to a glyph.
func Icon(thumbnail string) string {
	name := strings.ToLower(path.Base(thumbnail))
	name = strings.TrimSuffix(name, path.Ext(name))
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return defaultIcon
}
