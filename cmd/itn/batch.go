package main

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/az-ai-labs/en-itn/normalize"
)

// BatchCmd converts every matching file under Dir in sentence mode, line by
// line, writing the results under Out with the same relative paths.
type BatchCmd struct {
	Dir     string `arg:"" help:"Directory to scan" type:"existingdir"`
	Out     string `help:"Output directory" required:"" type:"path"`
	Ext     string `help:"File extension to process" default:".txt"`
	Workers int    `help:"Number of files processed in parallel" default:"4"`
}

// batchStats accumulates counts across workers.
type batchStats struct {
	mu      sync.Mutex
	files   int
	failed  int
	lines   int
	changed int
	bytes   int64
}

func (c *BatchCmd) Run(a *app) error {
	e, err := a.engine()
	if err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("batch: --workers must be at least 1")
	}
	outAbs, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	var paths []string
	err = filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, _ := filepath.Abs(path); abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), c.Ext) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("batch: walking %s: %w", c.Dir, err)
	}

	a.logger.Info("batch started", "files", len(paths), "workers", c.Workers)
	start := time.Now()
	stats := &batchStats{}

	semaphore := make(chan struct{}, c.Workers)
	var wg sync.WaitGroup
	for _, path := range paths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			c.processFile(a, e, path, stats)
		})
	}
	wg.Wait()

	fmt.Fprintf(a.stdout, "files: %d (failed %d)\nlines: %d (changed %d)\nbytes: %d\nelapsed: %s\n",
		stats.files, stats.failed, stats.lines, stats.changed, stats.bytes,
		time.Since(start).Round(time.Millisecond))
	if stats.failed > 0 {
		return fmt.Errorf("batch: %d of %d files failed", stats.failed, len(paths))
	}
	return nil
}

func (c *BatchCmd) processFile(a *app, e *normalize.Engine, path string, stats *batchStats) {
	lines, changed, n, err := c.convert(e, path)

	stats.mu.Lock()
	defer stats.mu.Unlock()
	if err != nil {
		a.logger.Error("batch file failed", "path", path, "err", err)
		stats.failed++
		return
	}
	a.logger.Debug("batch file done", "path", path, "lines", lines, "changed", changed)
	stats.files++
	stats.lines += lines
	stats.changed += changed
	stats.bytes += n
}

// convert writes the sentence-mode conversion of path under c.Out.
func (c *BatchCmd) convert(e *normalize.Engine, path string) (lines, changed int, n int64, err error) {
	rel, err := filepath.Rel(c.Dir, path)
	if err != nil {
		return 0, 0, 0, err
	}
	dst := filepath.Join(c.Out, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, 0, 0, err
	}

	in, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, 0, 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return 0, 0, 0, err
	}
	w := bufio.NewWriter(out)

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := sc.Text()
		n += int64(len(line)) + 1
		lines++
		written := e.Sentence(line)
		if written != line {
			changed++
		}
		if _, err := w.WriteString(written); err != nil {
			break
		}
		_ = w.WriteByte('\n')
	}
	err = sc.Err()
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return lines, changed, n, err
}
