package theme

import (
	"regexp"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidColor reports whether s is a #rgb or #rrggbb colour.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

// Overrides are optional replacements for the three brand tokens.
type Overrides struct {
	Primary   string
	Secondary string
	Accent    string
}

// Apply returns a copy of p with every valid override colour substituted.
// Invalid or empty overrides are ignored.
func (o Overrides) Apply(p Palette) Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	set := func(token, value string) {
		if ValidColor(value) {
			out[token] = value
		}
	}
	set("primary", o.Primary)
	set("secondary", o.Secondary)
	set("accent", o.Accent)
	return out
}

// VarName converts a token name to its CSS custom property, e.g.
// card_hover becomes --card-hover.
func VarName(token string) string {
	return "--" + strings.ReplaceAll(token, "_", "-")
}

// CSS renders p as a :root block of custom properties in Tokens order.
func CSS(p Palette) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, tok := range Tokens {
		v, ok := p[tok]
		if !ok {
			continue
		}
		b.WriteString("  ")
		b.WriteString(VarName(tok))
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}
