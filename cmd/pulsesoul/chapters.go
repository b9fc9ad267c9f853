package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List all chapters",
	Long:  "Display every chapter with its verse count and your reading progress",
	Run: func(cmd *cobra.Command, args []string) {
		explorer := env.explorer()
		if err := explorer.LoadChapters(cmd.Context()); err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.ChaptersError, err))
		}

		progress := explorer.Progress()
		columns := []table.Column{
			{Title: "#", Width: 4},
			{Title: "Name", Width: 22},
			{Title: "Meaning", Width: 26},
			{Title: "Type", Width: 8},
			{Title: "Verses", Width: 7},
			{Title: "Read", Width: 6},
		}

		rows := []table.Row{}
		for _, c := range explorer.Chapters() {
			read := "-"
			if p, ok := progress[c.Number]; ok {
				read = fmt.Sprintf("%d%%", p.Percent())
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", c.Number),
				truncateString(c.EnglishName, 20),
				truncateString(c.EnglishMeaning, 24),
				string(c.RevelationType),
				fmt.Sprintf("%d", c.VerseCount),
				read,
			})
		}

		fmt.Printf("\nChapters (%d)\n\n", len(rows))
		fmt.Println(newTable(columns, rows).View())
	},
}
