package phpsrc

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/prebuild/pkg/cache"
	"github.com/matzehuels/prebuild/pkg/errors"
	"github.com/matzehuels/prebuild/pkg/observability"
	"github.com/matzehuels/prebuild/pkg/project"
)

// Ext is the extension of rewritten source files.
const Ext = ".php"

// ledgerKeyType labels rewrite ledger events in [observability.CacheHooks].
const ledgerKeyType = "rewrite"

// Rewriter applies import requests to the PHP sources of a project.
type Rewriter struct {
	Project *project.Project
	// Cache records the content hash written per file and request.
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRewriter creates a rewriter. A nil cache disables the ledger and a nil
// logger discards output.
func NewRewriter(p *project.Project, c cache.Cache, logger *log.Logger) *Rewriter {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Rewriter{Project: p, Cache: c, Logger: logger}
}

// Skip is a file the rewriter could not process.
type Skip struct {
	Path string
	Err  error
}

// Result lists the project-relative paths that were rewritten and the files
// that failed.
type Result struct {
	Changed []string
	Skipped []Skip
	// Cached counts files the ledger showed as already rewritten.
	Cached int
}

// Rewrite merges req into every PHP file below sourceRoot. Each rewritten
// file is reported as ":import use '<path>'". I/O failures on single files
// are collected in Result.Skipped; only cancellation stops the walk early.
func (r *Rewriter) Rewrite(ctx context.Context, sourceRoot string, req Request, preserveLines bool, report project.LogFunc) (*Result, error) {
	res := &Result{}
	if len(req) == 0 {
		return res, nil
	}
	if _, err := os.Stat(sourceRoot); os.IsNotExist(err) {
		return res, nil
	}

	fingerprint := req.Fingerprint()
	err := filepath.WalkDir(sourceRoot, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.HasSuffix(path, Ext) {
			return nil
		}
		rel, ok := r.Project.Relative(path)
		if !ok {
			return nil
		}
		changed, cached, err := r.rewriteFile(ctx, path, rel, fingerprint, req, preserveLines)
		switch {
		case err != nil:
			r.Logger.Warn("skipping source", "path", rel, "err", err)
			res.Skipped = append(res.Skipped, Skip{Path: rel, Err: err})
		case cached:
			res.Cached++
		case changed:
			res.Changed = append(res.Changed, rel)
			report.Log(":import use '" + rel + "'")
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	r.Logger.Debug("rewrote sources",
		"root", sourceRoot,
		"changed", len(res.Changed),
		"cached", res.Cached,
		"skipped", len(res.Skipped))
	return res, nil
}

func (r *Rewriter) rewriteFile(ctx context.Context, path, rel, fingerprint string, req Request, preserveLines bool) (changed, cached bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, false, errors.Wrap(errors.ErrCodeFileIO, err, "read %s", rel)
	}

	key := cache.RewriteKey(fingerprint, rel, preserveLines)
	if prev, hit, err := r.Cache.Get(ctx, key); err == nil && hit && string(prev) == cache.Hash(data) {
		observability.Cache().OnCacheHit(ctx, ledgerKeyType)
		return false, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, ledgerKeyType)

	f := Parse(data)
	if added := f.AddImports(req, preserveLines); len(added) > 0 {
		out := f.Bytes()
		if !bytes.Equal(out, data) {
			if err := writeFile(path, out); err != nil {
				return false, false, errors.Wrap(errors.ErrCodeFileIO, err, "write %s", rel)
			}
			data, changed = out, true
		}
	}

	sum := []byte(cache.Hash(data))
	if err := r.Cache.Set(ctx, key, sum, 0); err != nil {
		r.Logger.Debug("ledger write failed", "path", rel, "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, ledgerKeyType, len(sum))
	}
	return changed, false, nil
}

// writeFile replaces the content of path keeping its permissions.
func writeFile(path string, data []byte) error {
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}
