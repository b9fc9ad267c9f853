package cmd

import (
	"fmt"
	"sync"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/integrations"
	"github.com/kerbaras/pulsesoul/pkg/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var exportCmd = &cobra.Command{
	Use:   "export [chapter...]",
	Short: "Export chapters or saved verses to EPUB",
	Long: `Compile one or more chapters, with the selected translation, into an EPUB
book. With --bookmarks or --favorites, compile those saved verses instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		bookmarks, _ := cmd.Flags().GetBool("bookmarks")
		favorites, _ := cmd.Flags().GetBool("favorites")
		output, _ := cmd.Flags().GetString("output")
		translation, _ := cmd.Flags().GetString("translation")
		if output == "" {
			output = env.cfg.ExportDir
		}
		if translation == "" {
			translation = env.settings.Translation()
		}

		builder := integrations.NewEPubBuilder(output)

		if bookmarks || favorites {
			shelf, title := data.NewBookmarks(env.repo, env.logger), "PulseSoul Bookmarks"
			if favorites {
				shelf, title = data.NewFavorites(env.repo, env.logger), "PulseSoul Favorites"
			}
			path, err := builder.CreateShelfEPub(title, shelf.List())
			if err != nil {
				cobra.CheckErr(fmt.Errorf("EPUB generation failed: %w", err))
			}
			fmt.Printf("📖 EPUB created: %s\n", path)
			return
		}

		if len(args) == 0 {
			cobra.CheckErr(fmt.Errorf("name at least one chapter, or use --bookmarks or --favorites"))
		}
		numbers := make([]int, 0, len(args))
		for _, arg := range args {
			n, err := parseChapter(arg)
			cobra.CheckErr(err)
			numbers = append(numbers, n)
		}

		t, ok := data.LookupTranslation(translation)
		if !ok {
			cobra.CheckErr(fmt.Errorf("unknown translation %q", translation))
		}

		fmt.Printf("📥 Fetching %d chapter(s) (%s)\n", len(numbers), t.Name)
		chapters, err := fetchChapters(cmd, numbers, translation)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("%s: %w", services.ChapterError, err))
		}

		title := fmt.Sprintf("%d. %s", chapters[0].Number, chapters[0].EnglishName)
		if len(chapters) > 1 {
			title = fmt.Sprintf("PulseSoul: %d chapters", len(chapters))
		}
		path, err := builder.CreateChapterEPub(title, t, chapters)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("EPUB generation failed: %w", err))
		}
		fmt.Printf("📖 EPUB created: %s\n", path)
	},
}

func fetchChapters(cmd *cobra.Command, numbers []int, translation string) ([]*data.ChapterDetail, error) {
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(env.cfg.DownloadConcurrency)

	var mu sync.Mutex
	chapters := make([]*data.ChapterDetail, 0, len(numbers))
	for _, n := range numbers {
		g.Go(func() error {
			detail, err := env.gateway.GetChapter(ctx, n, translation)
			if err != nil {
				env.logger.Warn("fetch chapter", zap.Int("chapter", n), zap.Error(err))
				return fmt.Errorf("chapter %d: %w", n, err)
			}
			mu.Lock()
			chapters = append(chapters, detail)
			mu.Unlock()
			fmt.Printf("  Chapter %d: %d verses\n", n, len(detail.Verses))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chapters, nil
}

func init() {
	exportCmd.Flags().Bool("bookmarks", false, "Export bookmarked verses")
	exportCmd.Flags().Bool("favorites", false, "Export favorite verses")
	exportCmd.Flags().StringP("output", "o", "", "Output directory (default is the configured export_dir)")
	exportCmd.Flags().StringP("translation", "t", "", "Translation code (default is the saved translation)")
	exportCmd.MarkFlagsMutuallyExclusive("bookmarks", "favorites")
}
