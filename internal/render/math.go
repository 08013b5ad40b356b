package render

import (
	"regexp"
	"strings"
)

// mathSymbols maps LaTeX command names to the glyph shown in place of them.
var mathSymbols = map[string]string{
	"Psi":        "Ψ",
	"psi":        "ψ",
	"alpha":      "α",
	"beta":       "β",
	"gamma":      "γ",
	"delta":      "δ",
	"epsilon":    "ε",
	"theta":      "θ",
	"lambda":     "λ",
	"mu":         "μ",
	"pi":         "π",
	"sigma":      "σ",
	"omega":      "ω",
	"hbar":       "ℏ",
	"nabla":      "∇",
	"sum":        "∑",
	"int":        "∫",
	"partial":    "∂",
	"infty":      "∞",
	"rightarrow": "→",
	"leftarrow":  "←",
	"equiv":      "≡",
	"approx":     "≈",
	"leq":        "≤",
	"geq":        "≥",
	"neq":        "≠",
	"pm":         "±",
	"times":      "×",
	"div":        "÷",
}

// One or two backslashes: MDX sources often double them.
var mathCommand = regexp.MustCompile(`\\{1,2}([a-zA-Z]+)`)

// formatEquation escapes the equation and swaps known commands for their
// glyphs. Unknown commands are kept exactly as written.
func formatEquation(eq string) string {
	eq = escape(strings.TrimSpace(eq))
	return mathCommand.ReplaceAllStringFunc(eq, func(m string) string {
		name := strings.TrimLeft(m, `\`)
		if glyph, ok := mathSymbols[name]; ok {
			return glyph
		}
		return m
	})
}
