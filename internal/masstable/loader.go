package masstable

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"nucleonics/internal/textutil"
	"nucleonics/internal/worker"
)

// Loader reads raw mass-evaluation tables. Workers sets how many goroutines
// parse rows; values below 2 keep parsing sequential.
type Loader struct {
	Workers int
}

// NewLoader creates a Loader with the given parse concurrency.
func NewLoader(workers int) *Loader {
	return &Loader{Workers: workers}
}

// LoadFile reads and parses a raw table file.
func (l *Loader) LoadFile(ctx context.Context, path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	t, err := l.Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Load parses every line of r, in order, into a Table. The load aborts on
// the first failing line; line order decides which error surfaces even when
// rows parse concurrently.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Table, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan table: %w", err)
	}

	if l.Workers > 1 {
		return l.loadParallel(ctx, lines)
	}

	table := make(Table, 0, len(lines))
	for i, line := range lines {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		entry, err := ParseRow(line)
		if err != nil {
			return nil, lineError(i, line, err)
		}
		table = append(table, entry)
	}
	return table, nil
}

// loadParallel fans row parsing out over a worker pool. Results come back
// indexed by line, so the table keeps source order and the earliest bad line
// wins.
func (l *Loader) loadParallel(ctx context.Context, lines []string) (Table, error) {
	pool := worker.NewPool(l.Workers, func(_ context.Context, line string) (Entry, error) {
		return ParseRow(line)
	})
	results := pool.Execute(ctx, lines)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table := make(Table, 0, len(lines))
	for i, res := range results {
		if res.Err != nil {
			return nil, lineError(i, lines[i], res.Err)
		}
		table = append(table, res.Value)
	}
	return table, nil
}

// lineError labels a parse failure with its 1-based line number and a
// truncated copy of the offending line.
func lineError(idx int, line string, err error) error {
	return fmt.Errorf("line %d (%s): %w", idx+1, textutil.Truncate(line, 40), err)
}
