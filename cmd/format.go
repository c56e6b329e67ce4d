package cmd

import (
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/everfind/everfind/pkg/query"
)

// Define styles using lipgloss
var (
	folderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	volumeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32")).
			Margin(1, 0, 0, 0)

	noResultsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))
)

// formatItem renders one search result, with a metadata line when any
// optional field is present.
func formatItem(item query.Item) string {
	path := item.Path
	switch item.Kind {
	case query.KindFolder:
		path = folderStyle.Render(path)
	case query.KindVolume:
		path = volumeStyle.Render(path)
	}

	meta := formatItemMeta(item)
	if meta == "" {
		return path
	}
	return path + "\n  " + metaStyle.Render(meta)
}

func formatItemMeta(item query.Item) string {
	var parts []string
	if item.Size != nil {
		parts = append(parts, formatSize(*item.Size))
	}
	if item.DateCreated != nil {
		parts = append(parts, "created "+formatTime(*item.DateCreated))
	}
	if item.DateModified != nil {
		parts = append(parts, "modified "+formatTime(*item.DateModified))
	}
	if item.DateAccessed != nil {
		parts = append(parts, "accessed "+formatTime(*item.DateAccessed))
	}
	if item.Attributes != nil {
		parts = append(parts, fs.FileMode(*item.Attributes).String())
	}
	return strings.Join(parts, ", ")
}

// formatSize formats a byte count with KB/MB/GB suffixes for readability
func formatSize(n uint64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(n)/(1024*1024*1024))
	}
}

// formatTime formats a time relative to now or as an absolute date
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < 24*time.Hour && diff >= 0 {
		if diff < time.Hour {
			minutes := int(diff.Minutes())
			if minutes < 1 {
				return "just now"
			}
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		return fmt.Sprintf("%d hours ago", int(diff.Hours()))
	}

	if t.Year() == now.Year() {
		return t.Format("Jan 2, 15:04")
	}
	return t.Format("Jan 2, 2006")
}
