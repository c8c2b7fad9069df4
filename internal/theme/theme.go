// Package theme holds the color palette used for cidemo's help output.
package theme

// Theme is a named pair of accent colors in #RRGGBB form.
type Theme struct {
	Name      string
	Primary   string
	Secondary string
}

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:      "catppuccin-mocha",
		Primary:   "#cba6f7", // Mauve
		Secondary: "#89b4fa", // Blue
	}
}
