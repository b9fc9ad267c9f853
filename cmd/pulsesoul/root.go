package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kerbaras/pulsesoul/pkg/app"
	"github.com/kerbaras/pulsesoul/pkg/app/screens"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "pulsesoul",
	Short: "A calm Quran reader for the terminal",
	Long: `Read the Quran verse by verse with translations, recitation audio,
a verse of the day, bookmarks, favorites and per-chapter progress.

Run without arguments to open the interactive reader.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive reader owns the terminal, so it logs to a file
		return setup(configFile, cmd == cmd.Root())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	Run: func(cmd *cobra.Command, args []string) {
		downloader := env.audioDownloader()
		defer downloader.Close()

		a := app.NewApp(screens.Deps{
			Settings:   env.settings,
			Daily:      env.dailyVerse(),
			Explorer:   env.explorer(),
			Downloader: downloader,
			Logger:     env.logger,
		})
		cobra.CheckErr(a.Run(cmd.Context()))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ~/.pulsesoul/config.yaml)")

	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(bookmarksCmd)
	rootCmd.AddCommand(favoritesCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(translationCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(audioCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		teardown()
		os.Exit(1)
	}
}
