package cmd

import (
	"fmt"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(env.settings.Theme())
			return
		}

		if args[0] == "toggle" {
			theme, err := env.settings.ToggleTheme()
			cobra.CheckErr(err)
			fmt.Printf("Theme set to %s\n", theme)
			return
		}

		theme, err := data.ParseTheme(args[0])
		cobra.CheckErr(err)
		cobra.CheckErr(env.settings.SetTheme(theme))
		fmt.Printf("Theme set to %s\n", theme)
	},
}
