// Package pipeline orchestrates the classify, resolve and copy steps
// for a batch of discovered files.
//
// Files fail in isolation: a copy error is recorded against that file
// and the batch continues. A failed primary copy suppresses the
// favorites copy for the same file. Path resolution and the following
// copy are one unit: the resolved path stays reserved until its copy
// finishes, so parallel workers cannot collide on a destination name.
package pipeline

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tracksort/tracksort/pkg/classify"
	"github.com/tracksort/tracksort/pkg/filesystem"
	"github.com/tracksort/tracksort/pkg/logging"
	"github.com/tracksort/tracksort/pkg/resolve"
	"github.com/tracksort/tracksort/pkg/scanner"
)

// State is the terminal stage a file reached in the dispatch lifecycle
type State string

const (
	StateDone   State = "done"
	StateFailed State = "failed"
)

// FileResult records what happened to one source file
type FileResult struct {
	Source       scanner.File
	Rule         string // matched rule name, empty on fallback
	Category     string // destination category path
	PrimaryPath  string // resolved primary destination, empty on early failure
	FavoritePath string // resolved favorites destination, empty unless favorite
	State        State
	Err          error
}

// Stats aggregates a completed run for the reporting layer
type Stats struct {
	// Categories maps category path to successfully placed file count
	Categories map[string]int

	// Favorites is the number of favorite copies placed
	Favorites int

	Total     int
	Processed int
	Failed    int
	Elapsed   time.Duration

	Results []FileResult
}

// Options tune a pipeline run
type Options struct {
	// Workers is the number of concurrent copy workers, minimum 1
	Workers int

	// BatchSize is the progress reporting cadence in files
	BatchSize int

	// DryRun resolves destinations but copies nothing
	DryRun bool

	// Progress, when set, is called after every BatchSize completed
	// files and once at the end of the run
	Progress func(done, total int)
}

// Pipeline wires the classification engine to the filesystem
type Pipeline struct {
	fs         filesystem.FS
	classifier *classify.Classifier
	favorites  *classify.Favorites
	resolver   *resolve.Resolver
	outputRoot string
	opts       Options
	logger     zerolog.Logger
}

// New creates a Pipeline placing files under outputRoot
func New(
	fsys filesystem.FS,
	classifier *classify.Classifier,
	favorites *classify.Favorites,
	resolver *resolve.Resolver,
	outputRoot string,
	opts Options,
) *Pipeline {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 1
	}
	return &Pipeline{
		fs:         fsys,
		classifier: classifier,
		favorites:  favorites,
		resolver:   resolver,
		outputRoot: outputRoot,
		opts:       opts,
		logger:     logging.GetLogger("pipeline"),
	}
}

// Run processes all files and returns the aggregated stats. Per-file
// failures are recorded in the stats, never returned as an error.
func (p *Pipeline) Run(files []scanner.File) *Stats {
	start := time.Now()

	stats := &Stats{
		Categories: make(map[string]int),
		Total:      len(files),
		Results:    make([]FileResult, len(files)),
	}

	var (
		mu   sync.Mutex
		done int
		wg   sync.WaitGroup
	)
	jobs := make(chan int)

	for w := 0; w < p.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result := p.processFile(files[i])

				mu.Lock()
				stats.Results[i] = result
				if result.State == StateDone {
					stats.Processed++
					stats.Categories[result.Category]++
					if result.FavoritePath != "" {
						stats.Favorites++
					}
				} else {
					stats.Failed++
				}
				done++
				if p.opts.Progress != nil && done%p.opts.BatchSize == 0 && done < stats.Total {
					p.opts.Progress(done, stats.Total)
				}
				mu.Unlock()
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if p.opts.Progress != nil && stats.Total > 0 {
		p.opts.Progress(stats.Total, stats.Total)
	}

	stats.Elapsed = time.Since(start)
	p.logger.Info().
		Int("processed", stats.Processed).
		Int("failed", stats.Failed).
		Int("favorites", stats.Favorites).
		Dur("elapsed", stats.Elapsed).
		Msg("Run complete")

	return stats
}

// processFile runs one file through classify -> resolve -> copy,
// then the favorites leg when marked
func (p *Pipeline) processFile(file scanner.File) FileResult {
	res := p.classifier.Classify(file.Name)
	result := FileResult{
		Source:   file,
		Rule:     res.Rule,
		Category: res.Folder,
	}

	// Sanitize exactly once; every probe and copy uses the safe name
	name := resolve.SanitizeFilename(file.Name)
	categoryDir := filepath.Join(p.outputRoot, filepath.FromSlash(res.Folder))

	primary, err := p.place(file.Path, categoryDir, name)
	if err != nil {
		p.logger.Warn().Err(err).Str("file", file.Name).Msg("Primary placement failed")
		result.State = StateFailed
		result.Err = err
		return result
	}
	result.PrimaryPath = primary

	if p.favorites.IsFavorite(file.Name) {
		favorite, err := p.place(file.Path, p.favorites.Dir(categoryDir), name)
		if err != nil {
			p.logger.Warn().Err(err).Str("file", file.Name).Msg("Favorites placement failed")
			result.State = StateFailed
			result.Err = err
			return result
		}
		result.FavoritePath = favorite
	}

	p.logger.Debug().
		Str("file", file.Name).
		Str("category", result.Category).
		Str("dest", result.PrimaryPath).
		Msg("File placed")

	result.State = StateDone
	return result
}

// place resolves a collision-free destination in dir and copies src
// there. The reservation is held across the copy and released after,
// except in dry-run where it stands in for the file never written.
func (p *Pipeline) place(src, dir, name string) (string, error) {
	if !p.opts.DryRun {
		if err := p.fs.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	dest, err := p.resolver.Resolve(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}

	if p.opts.DryRun {
		return dest, nil
	}

	if err := filesystem.Copy(p.fs, src, dest); err != nil {
		p.resolver.Release(dest)
		return "", err
	}
	p.resolver.Release(dest)
	return dest, nil
}
