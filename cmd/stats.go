package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show index statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(c.String("config"))
		},
	}
}

func showStats(configPath string) error {
	cfg, idx, err := openIndex(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := idx.Close(); err != nil {
			fmt.Printf("Warning: failed to close index: %v\n", err)
		}
	}()

	files, folders, volumes, err := idx.Count()
	if err != nil {
		return fmt.Errorf("counting index entries: %w", err)
	}

	titler := cases.Title(language.English)
	fmt.Println(headerStyle.Render("Index: " + cfg.IndexPath))
	for _, row := range []struct {
		label string
		count int64
	}{
		{"files", files},
		{"folders", folders},
		{"volumes", volumes},
	} {
		fmt.Printf("  %s: %d\n", titler.String(row.label), row.count)
	}
	fmt.Printf("  Total: %d\n", files+folders+volumes)
	return nil
}
