// Package multifile drives a diff.MultifilePatch against a filesystem
// root: for each per-file Patch it resolves source/target paths, reads,
// applies, and writes or deletes, converting every outcome — success or
// failure — into an ApplyResult rather than letting one file's error
// abort the rest (§4.6).
package multifile

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	diff "github.com/fwojciec/godiff"
)

// Kind identifies a multifile-driver failure category (§7, C6).
type Kind int

// Kinds.
const (
	// FileNotFound means a required source file was absent.
	FileNotFound Kind = iota
	// IoError means an underlying read/write/delete call failed.
	IoError
	// EncodingError means the file's bytes were not valid UTF-8.
	EncodingError
)

// Error is a structured multifile-driver failure.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileNotFound:
		return fmt.Sprintf("multifile: file not found: %s", e.Path)
	case EncodingError:
		return fmt.Sprintf("multifile: not valid UTF-8: %s", e.Path)
	default:
		return fmt.Sprintf("multifile: io error on %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ResultKind identifies which outcome variant an ApplyResult carries.
type ResultKind int

// Result kinds (§3 ApplyResult).
const (
	ResultApplied ResultKind = iota
	ResultDeleted
	ResultSkipped
	ResultFailed
)

// ApplyResult is the outcome of driving one Patch in a bundle.
type ApplyResult struct {
	Kind ResultKind

	Path      string
	Content   string
	IsNew     bool
	IsDeleted bool

	Reason string // set when Kind == ResultSkipped
	Err    error  // set when Kind == ResultFailed
}

// Driver applies a MultifilePatch's files against a root directory.
type Driver struct {
	// Root is joined with each file's resolved path. Empty means the
	// current working directory.
	Root string

	// Strategy is the applier strategy used per file. The driver does
	// not force one on callers; the zero value is diff.Fuzzy, but §4.6
	// recommends diff.Strict as the driver default.
	Strategy diff.Strategy
	// Direction selects forward or reverse application across the whole
	// bundle.
	Direction diff.Direction

	// Concurrency bounds how many files are processed at once. Zero
	// means unbounded.
	Concurrency int

	// Logger receives one line per file outcome, Info for
	// applied/deleted and Warn for failed/skipped. Nil disables logging.
	Logger *slog.Logger
}

// NewDriver returns a Driver rooted at root, defaulting to strict/forward.
func NewDriver(root string) *Driver {
	return &Driver{Root: root, Strategy: diff.Strict, Direction: diff.Forward}
}

// Apply drives every file in mp, independently, and returns one
// ApplyResult per file in input order. It never returns an error itself;
// all per-file failures are reported through the results slice.
func (d *Driver) Apply(ctx context.Context, mp *diff.MultifilePatch) []ApplyResult {
	results := make([]ApplyResult, len(mp.Files))

	g, _ := errgroup.WithContext(ctx)
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i := range mp.Files {
		i := i
		g.Go(func() error {
			results[i] = d.applyOne(&mp.Files[i])
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		d.logResult(r)
	}
	return results
}

func (d *Driver) applyOne(p *diff.Patch) ApplyResult {
	src, tgt := p.OldFile, p.NewFile
	if d.Direction == diff.Reverse {
		src, tgt = p.NewFile, p.OldFile
	}

	var content string
	if src != "/dev/null" {
		data, err := os.ReadFile(filepath.Join(d.Root, src))
		switch {
		case os.IsNotExist(err):
			return failed(src, &Error{Kind: FileNotFound, Path: src})
		case err != nil:
			return failed(src, &Error{Kind: IoError, Path: src, Err: err})
		case !utf8.Valid(data):
			return failed(src, &Error{Kind: EncodingError, Path: src})
		}
		content = string(data)
	}

	opts := diff.ApplyOptions{
		Strategy:          d.Strategy,
		Direction:         d.Direction,
		SearchRadius:      50,
		MinAggregateScore: 0.6,
	}
	result, err := diff.Apply(content, p, opts)
	if err != nil {
		return failed(tgt, err)
	}

	if tgt == "/dev/null" {
		err := os.Remove(filepath.Join(d.Root, src))
		if os.IsNotExist(err) {
			return ApplyResult{Kind: ResultSkipped, Path: src, Reason: "already absent"}
		}
		if err != nil {
			return failed(src, &Error{Kind: IoError, Path: src, Err: err})
		}
		return ApplyResult{Kind: ResultDeleted, Path: src}
	}

	fullTarget := filepath.Join(d.Root, tgt)
	isNew := src == "/dev/null"
	if isNew {
		if existing, err := os.ReadFile(fullTarget); err == nil && string(existing) == result {
			return ApplyResult{Kind: ResultSkipped, Path: tgt, Reason: "already exists"}
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullTarget), 0o755); err != nil {
		return failed(tgt, &Error{Kind: IoError, Path: tgt, Err: err})
	}
	if err := os.WriteFile(fullTarget, []byte(result), 0o644); err != nil {
		return failed(tgt, &Error{Kind: IoError, Path: tgt, Err: err})
	}
	return ApplyResult{Kind: ResultApplied, Path: tgt, Content: result, IsNew: isNew}
}

func failed(path string, err error) ApplyResult {
	return ApplyResult{Kind: ResultFailed, Path: path, Err: err}
}

func (d *Driver) logResult(r ApplyResult) {
	if d.Logger == nil {
		return
	}
	switch r.Kind {
	case ResultApplied:
		d.Logger.Info("applied", "path", r.Path, "is_new", r.IsNew)
	case ResultDeleted:
		d.Logger.Info("deleted", "path", r.Path)
	case ResultSkipped:
		d.Logger.Warn("skipped", "path", r.Path, "reason", r.Reason)
	case ResultFailed:
		d.Logger.Warn("failed", "path", r.Path, "error", r.Err)
	}
}
