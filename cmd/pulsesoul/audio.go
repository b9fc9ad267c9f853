package cmd

import (
	"fmt"
	"sync"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
)

var audioCmd = &cobra.Command{
	Use:   "audio [chapter]",
	Short: "Download a chapter's recitation for offline listening",
	Long: `Download the recitation of every verse in a chapter into the audio
directory. Files already on disk are skipped. With --play, play one verse
(chapter:verse) once the download finishes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := parseChapter(args[0])
		cobra.CheckErr(err)

		playKey, _ := cmd.Flags().GetString("play")
		var playRef data.VerseRef
		if playKey != "" {
			playRef, err = data.ParseVerseRef(playKey)
			cobra.CheckErr(err)
			if playRef.Chapter != number {
				cobra.CheckErr(fmt.Errorf("--play %s is not in chapter %d", playKey, number))
			}
		}

		downloader := env.audioDownloader()

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for progress := range downloader.GetProgressChannel() {
				switch progress.Status {
				case "complete":
				case "error":
					fmt.Printf("  Verse %s: error: %v\n", progress.Verse, progress.Error)
				default:
					fmt.Printf("  Verse %s: %s (%d/%d)\n", progress.Verse, progress.Status, progress.Current, progress.Total)
				}
			}
		}()

		fmt.Printf("📥 Downloading recitation for chapter %d to %s\n", number, env.cfg.Audio.Dir)
		written, err := downloader.DownloadChapter(cmd.Context(), number, env.settings.Translation())
		downloader.Close()
		wg.Wait()
		if err != nil {
			cobra.CheckErr(fmt.Errorf("download failed: %w", err))
		}
		fmt.Printf("\n✅ Download complete! %d new file(s)\n", written)

		if playKey == "" {
			return
		}
		explorer := env.explorer()
		if err := explorer.Select(cmd.Context(), number, env.settings.Translation()); err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.ChapterError, err))
		}
		snap := explorer.Snapshot()
		if playRef.Verse < 1 || playRef.Verse > len(snap.Detail.Verses) {
			cobra.CheckErr(fmt.Errorf("chapter %d has %d verses", number, len(snap.Detail.Verses)))
		}
		v := snap.Detail.Verses[playRef.Verse-1]
		fmt.Printf("▶ %s\n", v.Label())
		cobra.CheckErr(env.player().Play(cmd.Context(), v.AudioURL))
	},
}

func init() {
	audioCmd.Flags().String("play", "", "Play this verse (chapter:verse) after downloading")
}
