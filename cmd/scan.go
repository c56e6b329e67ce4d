package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/everfind/everfind/pkg/index"
	"github.com/urfave/cli/v3"
)

// ScanCommand creates the scan command
func ScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan the configured roots and update the index",
		ArgsUsage: "[root ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Keep running and apply filesystem changes to the index as they happen",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return scanRoots(ctx, c)
		},
	}
}

func scanRoots(ctx context.Context, c *cli.Command) error {
	cfg, idx, err := openIndex(c.String("config"))
	if err != nil {
		return err
	}
	defer func() {
		if err := idx.Close(); err != nil {
			fmt.Printf("Warning: failed to close index: %v\n", err)
		}
	}()

	roots := c.Args().Slice()
	if len(roots) == 0 {
		roots = cfg.Roots
	}
	if len(roots) == 0 {
		return fmt.Errorf("no roots to scan; pass them as arguments or set them in the config file")
	}

	stats, err := idx.Scan(roots, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	fmt.Printf("Indexed %d files, %d folders and %d volumes (%d stale entries pruned) in %s\n",
		stats.Files, stats.Folders, stats.Volumes, stats.Pruned, stats.Elapsed.Round(time.Millisecond))

	if !c.Bool("watch") {
		return nil
	}

	watcher, err := index.NewWatcher(idx, roots, cfg.Exclude)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	fmt.Println("Watching for changes. Press Ctrl+C to stop.")
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("watching: %w", err)
	}
	return nil
}
