package cmd

import (
	"fmt"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read [chapter]",
	Short: "Print a chapter or one of its verses",
	Long: `Print a chapter with its translation. With --verse, print only that verse
and remember it as your reading position. Without --verse, --resume prints
the verse you last stopped at.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := parseChapter(args[0])
		cobra.CheckErr(err)

		verse, _ := cmd.Flags().GetInt("verse")
		resume, _ := cmd.Flags().GetBool("resume")
		translation, _ := cmd.Flags().GetString("translation")
		if translation == "" {
			translation = env.settings.Translation()
		}

		if verse == 0 && !resume {
			// Print the whole chapter without moving the saved position
			detail, err := env.gateway.GetChapter(cmd.Context(), number, translation)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("%s: %w", services.ChapterError, err))
			}
			fmt.Printf("\n%d. %s  %s\n\n", detail.Number, detail.EnglishName, detail.ArabicName)
			for _, v := range detail.Verses {
				printVerse(v, true)
				fmt.Println()
			}
			return
		}

		explorer := env.explorer()
		if err := explorer.Select(cmd.Context(), number, translation); err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.ChapterError, err))
		}
		snap := explorer.Snapshot()
		if verse != 0 {
			total := len(snap.Detail.Verses)
			cobra.CheckErr(checkVerse(number, verse, total))
			cobra.CheckErr(data.NewProgressLog(env.repo, env.logger).Set(number, verse-1, total))
			snap.Index = verse - 1
		}

		v, _ := snap.Current()
		fmt.Println()
		printVerse(v, true)
		fmt.Println(labelStyle.Render(fmt.Sprintf("Verse %d of %d", snap.Index+1, len(snap.Detail.Verses))))
	},
}

func init() {
	readCmd.Flags().IntP("verse", "v", 0, "Verse number to print")
	readCmd.Flags().BoolP("resume", "r", false, "Print the verse you last stopped at")
	readCmd.Flags().StringP("translation", "t", "", "Translation code (default is the saved translation)")
}
