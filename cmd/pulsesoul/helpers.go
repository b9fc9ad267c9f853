package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pulsesoul/pkg/data"
)

var (
	arabicStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func parseChapter(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < data.MinChapter || n > data.MaxChapter {
		return 0, fmt.Errorf("chapter must be a number from %d to %d, got %q", data.MinChapter, data.MaxChapter, arg)
	}
	return n, nil
}

func checkVerse(chapter, verse, total int) error {
	if verse < 1 || verse > total {
		return fmt.Errorf("verse must be from 1 to %d in chapter %d, got %d", total, chapter, verse)
	}
	return nil
}

func printVerse(v data.Verse, withTranslation bool) {
	fmt.Println(arabicStyle.Render(v.Arabic))
	if withTranslation && v.Translation != "" {
		fmt.Println(v.Translation)
	}
	fmt.Println(labelStyle.Render(v.Label()))
}

func newTable(columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}
