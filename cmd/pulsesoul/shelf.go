package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/spf13/cobra"
)

var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "List bookmarked verses",
	Run: func(cmd *cobra.Command, args []string) {
		runShelf(cmd, "Bookmarks", data.NewBookmarks(env.repo, env.logger))
	},
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite verses",
	Run: func(cmd *cobra.Command, args []string) {
		runShelf(cmd, "Favorites", data.NewFavorites(env.repo, env.logger))
	},
}

func runShelf(cmd *cobra.Command, title string, shelf *data.Shelf) {
	if key, _ := cmd.Flags().GetString("remove"); key != "" {
		if _, err := data.ParseVerseRef(key); err != nil {
			cobra.CheckErr(err)
		}
		if !shelf.Contains(key) {
			fmt.Printf("%s is not in %s\n", key, title)
			return
		}
		cobra.CheckErr(shelf.Remove(key))
		fmt.Printf("Removed %s from %s\n", key, title)
		return
	}

	entries := shelf.List()
	if len(entries) == 0 {
		fmt.Printf("No %s yet.\n", title)
		return
	}

	columns := []table.Column{
		{Title: "Verse", Width: 8},
		{Title: "Chapter", Width: 16},
		{Title: "Translation", Width: 60},
	}
	rows := []table.Row{}
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Key,
			truncateString(e.ChapterLabel, 14),
			truncateString(e.Translation, 58),
		})
	}

	fmt.Printf("\n%s (%d)\n\n", title, len(entries))
	fmt.Println(newTable(columns, rows).View())
}

func init() {
	bookmarksCmd.Flags().String("remove", "", "Remove the verse with this key (chapter:verse)")
	favoritesCmd.Flags().String("remove", "", "Remove the verse with this key (chapter:verse)")
}
