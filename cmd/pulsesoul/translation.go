package cmd

import (
	"fmt"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/spf13/cobra"
)

var translationCmd = &cobra.Command{
	Use:   "translation [code]",
	Short: "Show, list or change the translation",
	Long:  "Without arguments, list the available translations and mark the selected one. With a code, select it.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 1 {
			cobra.CheckErr(env.settings.SetTranslation(args[0]))
			t, _ := data.LookupTranslation(args[0])
			fmt.Printf("Translation set to %s (%s)\n", t.Name, t.Code)
			return
		}

		current := env.settings.Translation()
		for _, t := range data.Translations {
			marker := " "
			if t.Code == current {
				marker = "*"
			}
			fmt.Printf("%s %-14s %s\n", marker, t.Code, t.Name)
		}
	},
}
