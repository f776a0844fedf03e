package export

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fwojciec/lospec"
	"golang.org/x/sync/errgroup"
)

// ContentsFile is the manifest name Xcode expects in asset catalog folders.
const ContentsFile = "Contents.json"

// ColorsetExt is the suffix of per-color directories.
const ColorsetExt = ".colorset"

// HexEntry is one color token from a flat hex list.
type HexEntry struct {
	Token string // As served, used for the directory name
	Color lospec.Color
}

// ParseHexList splits a newline-delimited hex payload into color entries in
// order. Blank lines are skipped. Any malformed token fails the whole list.
func ParseHexList(body []byte) ([]HexEntry, error) {
	if !utf8.Valid(body) {
		return nil, &lospec.DecodeError{Field: "body", Err: fmt.Errorf("invalid UTF-8")}
	}

	var entries []HexEntry
	for i, line := range strings.Split(string(body), "\n") {
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		c, err := lospec.ParseColor(token)
		if err != nil {
			return nil, &lospec.DecodeError{Field: fmt.Sprintf("line %d", i+1), Token: token, Err: err}
		}
		entries = append(entries, HexEntry{Token: token, Color: c})
	}
	return entries, nil
}

type (
	manifestInfo struct {
		Author  string `json:"author"`
		Version int    `json:"version"`
	}

	folderManifest struct {
		Info manifestInfo `json:"info"`
	}

	colorManifest struct {
		Colors []colorEntry `json:"colors"`
		Info   manifestInfo `json:"info"`
	}

	colorEntry struct {
		Color colorValue `json:"color"`
		Idiom string     `json:"idiom"`
	}

	colorValue struct {
		ColorSpace string          `json:"color-space"`
		Components colorComponents `json:"components"`
	}

	colorComponents struct {
		Alpha string `json:"alpha"`
		Blue  string `json:"blue"`
		Green string `json:"green"`
		Red   string `json:"red"`
	}
)

var xcodeInfo = manifestInfo{Author: "xcode", Version: 1}

// FolderManifest returns the Contents.json written at the root of a
// colorset export. Its content does not depend on the palette.
func FolderManifest() []byte {
	return marshalManifest(folderManifest{Info: xcodeInfo})
}

// ColorManifest returns the Contents.json describing a single sRGB color.
func ColorManifest(c lospec.Color) []byte {
	return marshalManifest(colorManifest{
		Colors: []colorEntry{{
			Color: colorValue{
				ColorSpace: "srgb",
				Components: colorComponents{
					Alpha: "1.000",
					Blue:  lospec.HexChannel(c.B),
					Green: lospec.HexChannel(c.G),
					Red:   lospec.HexChannel(c.R),
				},
			},
			Idiom: "universal",
		}},
		Info: xcodeInfo,
	})
}

func marshalManifest(v any) []byte {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		// Manifests are built from fixed string fields only.
		panic(fmt.Sprintf("export: marshal manifest: %v", err))
	}
	return append(data, '\n')
}

// writeColorset writes an Xcode color folder: a root Contents.json plus one
// <token>.colorset directory per color. All tokens are validated before the
// first write. If a write fails, directories created by this call are
// removed again and manifests it overwrote are restored.
func writeColorset(ctx context.Context, e *Exporter, path string, body []byte) error {
	entries, err := ParseHexList(body)
	if err != nil {
		return err
	}
	entries = dedupe(entries)

	rootExisted, err := e.fs.Exists(path)
	if err != nil {
		return asIOError("stat", path, err)
	}

	var rb rollback
	if !rootExisted {
		rb.add(path)
	}
	if err := e.writeColorsetTree(ctx, path, entries, &rb); err != nil {
		rb.run(e)
		return err
	}
	e.logger.Info().Str("path", path).Int("colors", len(entries)).Msg("Wrote colorset")
	return nil
}

func (e *Exporter) writeColorsetTree(ctx context.Context, path string, entries []HexEntry, rb *rollback) error {
	if err := e.fs.MkdirAll(path); err != nil {
		return asIOError("mkdir", path, err)
	}
	if err := e.writeManifest(filepath.Join(path, ContentsFile), FolderManifest(), rb); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for _, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return e.writeColor(path, entry, rb)
		})
	}
	return g.Wait()
}

func (e *Exporter) writeColor(root string, entry HexEntry, rb *rollback) error {
	dir := filepath.Join(root, entry.Token+ColorsetExt)
	existed, err := e.fs.Exists(dir)
	if err != nil {
		return asIOError("stat", dir, err)
	}
	if !existed {
		rb.add(dir)
	}
	if err := e.fs.MkdirAll(dir); err != nil {
		return asIOError("mkdir", dir, err)
	}
	if err := e.writeManifest(filepath.Join(dir, ContentsFile), ColorManifest(entry.Color), rb); err != nil {
		return err
	}
	e.logger.Debug().Str("color", entry.Token).Str("dir", dir).Msg("Wrote color")
	return nil
}

// writeManifest writes data to path. If path already exists its previous
// contents are recorded so rollback can put them back.
func (e *Exporter) writeManifest(path string, data []byte, rb *rollback) error {
	existed, err := e.fs.Exists(path)
	if err != nil {
		return asIOError("stat", path, err)
	}
	if existed {
		prev, err := e.fs.ReadFile(path)
		if err != nil {
			return asIOError("read", path, err)
		}
		rb.restore(path, prev)
	}
	if err := e.fs.WriteFile(path, data); err != nil {
		return asIOError("write", path, err)
	}
	return nil
}

// dedupe drops repeated colors. Tokens that differ only in case or in the
// 0x prefix name the same color and, on case-insensitive filesystems, the
// same directory. The first spelling wins.
func dedupe(entries []HexEntry) []HexEntry {
	seen := make(map[lospec.Color]bool, len(entries))
	out := make([]HexEntry, 0, len(entries))
	for _, entry := range entries {
		if seen[entry.Color] {
			continue
		}
		seen[entry.Color] = true
		out = append(out, entry)
	}
	return out
}

// undo reverts one filesystem change.
type undo struct {
	path    string
	restore bool   // Rewrite data instead of removing path
	data    []byte // Previous file contents
}

// rollback records changes made during an export so a failed export can
// revert them.
type rollback struct {
	mu    sync.Mutex
	steps []undo
}

// add records a path created by this export.
func (r *rollback) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, undo{path: path})
}

// restore records a file this export is about to overwrite.
func (r *rollback) restore(path string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, undo{path: path, restore: true, data: data})
}

// run reverts recorded changes, newest first. Failures are logged, not
// returned, so the original error reaches the caller.
func (r *rollback) run(e *Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.steps) - 1; i >= 0; i-- {
		step := r.steps[i]
		var err error
		if step.restore {
			err = e.fs.WriteFile(step.path, step.data)
		} else {
			err = e.fs.RemoveAll(step.path)
		}
		if err != nil {
			e.logger.Warn().Err(err).Str("path", step.path).Msg("Rollback failed")
		}
	}
}
