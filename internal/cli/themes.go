package cli

import (
	"fmt"

	"github.com/darkred-portfolio/backend/internal/theme"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect the theme table",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List theme identifiers",
	Args:  cobra.NoArgs,
	RunE:  runThemesList,
}

var themesShowCmd = &cobra.Command{
	Use:   "show [theme-id]",
	Short: "Print a theme's palette",
	Long:  `Prints every token of the resolved palette. Unknown identifiers resolve to the fallback theme, exactly as the site does.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesShow,
}

// showCSS is a flag for the show command.
var showCSS bool

func init() {
	themesShowCmd.Flags().BoolVar(&showCSS, "css", false, "Print as CSS custom properties")

	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	rootCmd.AddCommand(themesCmd)
}

// themeTable returns the configured table file, or the built-in table.
func themeTable() (*theme.Table, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Theme.File == "" {
		return theme.Builtin(), nil
	}
	table, err := theme.LoadFile(cfg.Theme.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.Theme.File, err)
	}
	return table, nil
}

func runThemesList(cmd *cobra.Command, _ []string) error {
	table, err := themeTable()
	if err != nil {
		return err
	}

	for _, info := range table.Themes() {
		marker := ""
		if info.ID == theme.Fallback {
			marker = " (fallback)"
		}
		cmd.Printf("  %-16s %s%s\n", info.ID, info.Label, marker)
	}
	return nil
}

func runThemesShow(cmd *cobra.Command, args []string) error {
	table, err := themeTable()
	if err != nil {
		return err
	}

	id := args[0]
	palette := table.Resolve(id)
	if showCSS {
		cmd.Print(theme.CSS(palette))
		return nil
	}

	if !table.Has(id) {
		cmd.Printf("Unknown theme %q, showing %s\n\n", id, theme.Fallback)
	}
	for _, token := range theme.Tokens {
		cmd.Printf("  %-22s %s\n", token, palette[token])
	}
	return nil
}
