package cmd

import (
	"fmt"

	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show the verse of the day",
	Long:  "Show today's verse in the selected translation. The verse stays the same for the rest of the day.",
	Run: func(cmd *cobra.Command, args []string) {
		bookmark, _ := cmd.Flags().GetBool("bookmark")
		play, _ := cmd.Flags().GetBool("play")
		translation, _ := cmd.Flags().GetString("translation")
		if translation == "" {
			translation = env.settings.Translation()
		}

		daily := env.dailyVerse()
		if err := daily.Load(cmd.Context(), translation); err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.DailyVerseError, err))
		}

		snap := daily.Snapshot()
		fmt.Println()
		printVerse(*snap.Verse, true)

		if bookmark {
			added, err := daily.ToggleBookmark()
			cobra.CheckErr(err)
			if added {
				fmt.Println("\n★ Bookmarked")
			} else {
				fmt.Println("\n☆ Bookmark removed")
			}
		}
		if play {
			daily.PlayAudio(cmd.Context())
		}
	},
}

func init() {
	dailyCmd.Flags().BoolP("bookmark", "b", false, "Toggle a bookmark on today's verse")
	dailyCmd.Flags().BoolP("play", "p", false, "Play the recitation")
	dailyCmd.Flags().StringP("translation", "t", "", "Translation code (default is the saved translation)")
}
