package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search chapters by name or number",
	Long:  "Filter chapters whose English name contains the query, or whose number contains it",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		explorer := env.explorer()

		if err := explorer.LoadChapters(cmd.Context()); err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.ChaptersError, err))
		}

		results := services.FilterChapters(explorer.Chapters(), query)
		if len(results) == 0 {
			fmt.Println("No results found.")
			return
		}

		var (
			teal = lipgloss.Color("36")

			headerStyle = lipgloss.NewStyle().Foreground(teal).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(teal)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Name", "Arabic", "Meaning", "Verses")

		for _, c := range results {
			t.Row(fmt.Sprintf("%d", c.Number), c.EnglishName, c.ArabicName, truncateString(c.EnglishMeaning, 40), fmt.Sprintf("%d", c.VerseCount))
		}

		fmt.Println(t)
	},
}
