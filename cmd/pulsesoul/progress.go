package cmd

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show your reading position in each chapter",
	Run: func(cmd *cobra.Command, args []string) {
		all := data.NewProgressLog(env.repo, env.logger).All()
		if len(all) == 0 {
			fmt.Println("No chapters opened yet. Use 'pulsesoul read' or the reader to start.")
			return
		}

		chapters := make([]int, 0, len(all))
		for n := range all {
			chapters = append(chapters, n)
		}
		sort.Ints(chapters)

		columns := []table.Column{
			{Title: "Chapter", Width: 8},
			{Title: "Verse", Width: 12},
			{Title: "Read", Width: 6},
		}
		rows := []table.Row{}
		for _, n := range chapters {
			p := all[n]
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", n),
				fmt.Sprintf("%d / %d", p.LastIndex+1, p.Total),
				fmt.Sprintf("%d%%", p.Percent()),
			})
		}

		fmt.Printf("\nReading progress (%d chapters)\n\n", len(rows))
		fmt.Println(newTable(columns, rows).View())
	},
}
