package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tracksort/tracksort/pkg/classify"
	"github.com/tracksort/tracksort/pkg/config"
	"github.com/tracksort/tracksort/pkg/errors"
	"github.com/tracksort/tracksort/pkg/filesystem"
	"github.com/tracksort/tracksort/pkg/pipeline"
	"github.com/tracksort/tracksort/pkg/resolve"
	"github.com/tracksort/tracksort/pkg/rules"
	"github.com/tracksort/tracksort/pkg/scanner"
	"github.com/tracksort/tracksort/pkg/style"
)

func newSortCmd() *cobra.Command {
	var (
		output    string
		dryRun    bool
		workers   int
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "sort SOURCE",
		Short: "Classify and copy audio files into the genre hierarchy",
		Example: `  tracksort sort ~/Music/Unsorted
  tracksort sort ~/Music/Unsorted --output /mnt/sorted
  tracksort sort ~/Music/Unsorted --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Settings.Workers = workers
			}
			if batchSize > 0 {
				cfg.Settings.BatchSize = batchSize
			}

			source, err := filepath.Abs(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "resolving source %s", args[0])
			}
			if output == "" {
				output = filepath.Join(source, cfg.Settings.OutputDir)
			} else if output, err = filepath.Abs(output); err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, "resolving output %s", output)
			}

			return runSort(cfg, source, output, dryRun)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Output directory (default SOURCE/<output_dir setting>)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Classify and resolve destinations without copying anything")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"Concurrent copy workers (overrides config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0,
		"Progress reporting cadence in files (overrides config)")

	return cmd
}

func runSort(cfg *config.Config, source, output string, dryRun bool) error {
	table, err := rules.Load(cfg.Rules)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	files, err := scanner.New(fsys, cfg.Settings.Extensions, output).Scan(source)
	if err != nil {
		return err
	}

	format := style.DetectFormat(os.Stdout)
	renderer := style.NewRenderer(format)

	if len(files) == 0 {
		fmt.Println("No matching files found under " + source)
		return nil
	}

	progress := style.NewProgress(format, len(files))
	p := pipeline.New(
		fsys,
		classify.New(table, cfg.Settings.FallbackFolder),
		classify.NewFavorites(cfg.Settings.FavoritesMarker, cfg.Settings.FavoritesFolder),
		resolve.New(fsys, cfg.Settings.MaxVersionProbes),
		output,
		pipeline.Options{
			Workers:   cfg.Settings.Workers,
			BatchSize: cfg.Settings.BatchSize,
			DryRun:    dryRun,
			Progress:  progress.Update,
		},
	)

	stats := p.Run(files)
	progress.Stop()

	os.Stdout.WriteString(renderer.RenderSummary(stats))

	if stats.Failed > 0 {
		return errors.Newf(errors.ErrFileCopy, "%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}
