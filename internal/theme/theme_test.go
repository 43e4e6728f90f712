package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTokensCount(t *testing.T) {
	if len(Tokens) != 40 {
		t.Errorf("len(Tokens) = %d, expected 40", len(Tokens))
	}
	seen := map[string]bool{}
	for _, tok := range Tokens {
		if seen[tok] {
			t.Errorf("duplicate token %q", tok)
		}
		seen[tok] = true
	}
}

func TestResolve_EveryThemeComplete(t *testing.T) {
	table := Builtin()
	for _, id := range IDs {
		t.Run(id, func(t *testing.T) {
			p := table.Resolve(id)
			for _, tok := range Tokens {
				v, ok := p[tok]
				if !ok {
					t.Fatalf("missing token %q", tok)
				}
				if v == "" {
					t.Errorf("token %q is empty", tok)
				}
				if !strings.HasPrefix(v, "#") && !strings.HasPrefix(v, "rgba(") && !strings.HasPrefix(v, "linear-gradient(") {
					t.Errorf("token %q = %q has unexpected format", tok, v)
				}
			}
		})
	}
}

func TestResolve_UnknownFallsBackToDarkRed(t *testing.T) {
	table := Builtin()
	for _, id := range []string{"not_a_theme", "", "DARK_RED", "dark red"} {
		if got := table.Resolve(id); !reflect.DeepEqual(got, table.Resolve("dark_red")) {
			t.Errorf("Resolve(%q) did not fall back to dark_red", id)
		}
	}
}

func TestResolve_Idempotent(t *testing.T) {
	first := Resolve("ocean_deep")
	second := Resolve("ocean_deep")
	if !reflect.DeepEqual(first, second) {
		t.Error("Resolve returned different palettes for the same id")
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	p := Resolve("cyberpunk")
	p["primary"] = "#000000"
	delete(p, "bg0")

	again := Resolve("cyberpunk")
	if again["primary"] != "#00ff88" {
		t.Errorf("primary = %q after caller mutation", again["primary"])
	}
	if again["bg0"] != "#0a0a0a" {
		t.Errorf("bg0 = %q after caller mutation", again["bg0"])
	}
}

func TestResolve_CyberpunkReference(t *testing.T) {
	p := Resolve("cyberpunk")
	if p["bg0"] != "#0a0a0a" {
		t.Errorf("bg0 = %q, expected #0a0a0a", p["bg0"])
	}
	if p["primary"] != "#00ff88" {
		t.Errorf("primary = %q, expected #00ff88", p["primary"])
	}
}

func TestThemes_Order(t *testing.T) {
	infos := Builtin().Themes()
	if len(infos) != len(IDs) {
		t.Fatalf("len(Themes()) = %d, expected %d", len(infos), len(IDs))
	}
	for i, info := range infos {
		if info.ID != IDs[i] {
			t.Errorf("Themes()[%d].ID = %q, expected %q", i, info.ID, IDs[i])
		}
		if info.Label == "" {
			t.Errorf("theme %q has no label", info.ID)
		}
	}
}

func TestHas(t *testing.T) {
	table := Builtin()
	if !table.Has("default") {
		t.Error("Has(default) = false")
	}
	if table.Has("nope") {
		t.Error("Has(nope) = true")
	}
}

func minimalTable(mutate func(id, tok string) (string, bool)) string {
	var b strings.Builder
	b.WriteString("themes:\n")
	for _, id := range IDs {
		b.WriteString("  " + id + ":\n    label: " + id + "\n    tokens:\n")
		for _, tok := range Tokens {
			v, keep := "#112233", true
			if mutate != nil {
				v, keep = mutate(id, tok)
			}
			if keep {
				b.WriteString("      " + tok + ": \"" + v + "\"\n")
			}
		}
	}
	return b.String()
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid",
			data: minimalTable(nil),
		},
		{
			name: "missing token",
			data: minimalTable(func(id, tok string) (string, bool) {
				return "#112233", !(id == "dark_blue" && tok == "glow")
			}),
			wantErr: `missing token "glow"`,
		},
		{
			name: "bad value",
			data: minimalTable(func(id, tok string) (string, bool) {
				if id == "default" && tok == "link" {
					return "blue", true
				}
				return "#112233", true
			}),
			wantErr: "invalid value",
		},
		{
			name: "bare prefix",
			data: minimalTable(func(id, tok string) (string, bool) {
				if tok == "primary" {
					return "#", true
				}
				return "rgba(0, 0, 0, 0.5)", true
			}),
			wantErr: "invalid value",
		},
		{
			name:    "missing theme",
			data:    strings.Replace(minimalTable(nil), "  cyberpunk:", "  cyber:", 1),
			wantErr: "unknown theme",
		},
		{
			name:    "malformed yaml",
			data:    "themes: [",
			wantErr: "parse theme table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, expected to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile_AndSetDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	if err := os.WriteFile(path, []byte(minimalTable(nil)), 0644); err != nil {
		t.Fatal(err)
	}
	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	original := Default()
	SetDefault(table)
	t.Cleanup(func() { SetDefault(original) })

	if got := Resolve("cyberpunk")["primary"]; got != "#112233" {
		t.Errorf("primary = %q, expected table from file", got)
	}

	SetDefault(nil)
	if Default() != table {
		t.Error("SetDefault(nil) should keep the current table")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
