// Package theme resolves a theme identifier to its palette of style tokens.
// The palette data lives in a YAML table; the built-in table is embedded and
// can be replaced at startup with an operator-supplied file of the same shape.
package theme

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

// Fallback is used for any identifier the table does not know.
const Fallback = "dark_red"

// IDs is the recognised set, in display order.
var IDs = []string{
	"dark_red",
	"dark_blue",
	"dark_green",
	"dark_purple",
	"ocean_deep",
	"sunset_orange",
	"forest_dark",
	"royal_purple",
	"cyberpunk",
	"midnight_blue",
	"default",
}

// Tokens is every key a palette must define.
var Tokens = []string{
	"primary", "secondary", "accent",
	"bg0", "bg1", "bg2",
	"card", "card_hover", "surface",
	"text", "text_strong", "muted",
	"border", "border_strong",
	"nav_bg", "nav_border",
	"button_gradient", "button_hover_gradient", "button_text",
	"hero_gradient",
	"glow", "glow_strong",
	"badge_bg", "badge_text", "badge_border",
	"pill_bg", "pill_text", "pill_border",
	"link", "link_hover",
	"input_bg", "input_border", "focus_border", "focus_ring",
	"timeline_line", "timeline_dot", "timeline_glow",
	"scrollbar_thumb", "selection_bg", "footer_bg",
}

var valuePrefixes = []string{"#", "rgba(", "linear-gradient("}

//go:embed themes.yaml
var builtin []byte

// Palette maps token names to CSS values.
type Palette map[string]string

// Info describes a theme for pickers.
type Info struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type entry struct {
	Label  string            `yaml:"label"`
	Tokens map[string]string `yaml:"tokens"`
}

type document struct {
	Themes map[string]entry `yaml:"themes"`
}

// Table is an immutable, validated palette table.
type Table struct {
	entries map[string]entry
}

// Load parses and validates a palette table.
func Load(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse theme table: %w", err)
	}

	known := make(map[string]bool, len(IDs))
	for _, id := range IDs {
		known[id] = true
	}
	for id := range doc.Themes {
		if !known[id] {
			return nil, fmt.Errorf("theme table: unknown theme %q", id)
		}
	}

	for _, id := range IDs {
		e, ok := doc.Themes[id]
		if !ok {
			return nil, fmt.Errorf("theme table: missing theme %q", id)
		}
		for _, tok := range Tokens {
			v, ok := e.Tokens[tok]
			if !ok {
				return nil, fmt.Errorf("theme %q: missing token %q", id, tok)
			}
			if !validValue(v) {
				return nil, fmt.Errorf("theme %q: token %q has invalid value %q", id, tok, v)
			}
		}
		if len(e.Tokens) != len(Tokens) {
			return nil, fmt.Errorf("theme %q: %d tokens, expected %d", id, len(e.Tokens), len(Tokens))
		}
	}

	return &Table{entries: doc.Themes}, nil
}

// LoadFile reads a palette table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data)
}

// Builtin returns the embedded table.
func Builtin() *Table {
	t, err := Load(builtin)
	if err != nil {
		panic(err)
	}
	return t
}

func validValue(v string) bool {
	for _, p := range valuePrefixes {
		if strings.HasPrefix(v, p) && len(v) > len(p) {
			return true
		}
	}
	return false
}

// Resolve returns a fresh copy of the palette for id, or of the fallback
// palette when id is not recognised.
func (t *Table) Resolve(id string) Palette {
	e, ok := t.entries[id]
	if !ok {
		e = t.entries[Fallback]
	}
	p := make(Palette, len(e.Tokens))
	for k, v := range e.Tokens {
		p[k] = v
	}
	return p
}

// Has reports whether id is a recognised theme.
func (t *Table) Has(id string) bool {
	_, ok := t.entries[id]
	return ok
}

// Themes lists the recognised themes in display order.
func (t *Table) Themes() []Info {
	out := make([]Info, 0, len(IDs))
	for _, id := range IDs {
		out = append(out, Info{ID: id, Label: t.entries[id].Label})
	}
	return out
}

var current atomic.Pointer[Table]

func init() {
	current.Store(Builtin())
}

// Default returns the table used by the package-level helpers.
func Default() *Table {
	return current.Load()
}

// SetDefault replaces the package-level table.
func SetDefault(t *Table) {
	if t != nil {
		current.Store(t)
	}
}

// Resolve resolves id against the default table.
func Resolve(id string) Palette {
	return Default().Resolve(id)
}

// Keys returns the palette's token names sorted alphabetically.
func (p Palette) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
