package stars

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/agentstation/starlens/pkg/errors"
	"github.com/agentstation/starlens/pkg/logging"
)

// Loader reads starred-repository exports from disk. Not safe for concurrent
// use; create one per run.
type Loader struct {
	logger  *zerolog.Logger
	skipped int
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger routes the loader's record warnings to the given logger instead
// of the one carried by the context.
func WithLogger(logger *zerolog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader with the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every record reachable from the given paths. A path naming a
// directory is treated as a paged export: its *.json entries are read in
// lexicographic order and concatenated. Malformed records are skipped with a
// warning; unreadable files and structurally invalid JSON are fatal.
//
// The result is sorted by starred timestamp ascending, stable for records
// starred at the same instant.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]Record, error) {
	if len(paths) == 0 {
		return nil, &errors.ValidationError{Field: "input", Message: "at least one input path is required"}
	}
	l.skipped = 0

	var records []Record
	for _, path := range paths {
		files, err := expandPath(path)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			rs, err := l.loadFile(ctx, file)
			if err != nil {
				return nil, err
			}
			records = append(records, rs...)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StarredAt.Before(records[j].StarredAt)
	})

	return records, nil
}

// Skipped returns how many malformed records the last Load dropped.
func (l *Loader) Skipped() int {
	return l.skipped
}

// loadFile decodes one export file, skipping entries that fail to decode or
// validate.
func (l *Loader) loadFile(ctx context.Context, path string) ([]Record, error) {
	log := l.log(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "input file", ID: path}
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	records := make([]Record, 0, len(raws))
	for i, raw := range raws {
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			l.skipped++
			log.Warn().
				Err(errors.NewRecordError(path, i, "not a record object", err)).
				Msg("Skipping unreadable record")
			continue
		}
		if err := rec.Validate(); err != nil {
			l.skipped++
			log.Warn().
				Err(errors.NewRecordError(path, i, err.Error(), err)).
				Msg("Skipping malformed record")
			continue
		}
		records = append(records, rec)
	}

	log.Debug().
		Str("file", path).
		Int("records", len(records)).
		Int("entries", len(raws)).
		Msg("Loaded export file")

	return records, nil
}

// log picks the configured logger, falling back to the context's.
func (l *Loader) log(ctx context.Context) *zerolog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return logging.FromContext(ctx)
}

// expandPath resolves a path to the export files beneath it: the path itself
// for a file, its *.json entries (sorted) for a directory.
func expandPath(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "input path", ID: path}
		}
		return nil, errors.WrapIO("stat", path, err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := filepath.Glob(filepath.Join(path, "*.json"))
	if err != nil {
		return nil, errors.WrapIO("glob", path, err)
	}
	if len(files) == 0 {
		return nil, &errors.NotFoundError{Resource: "export files in", ID: path}
	}
	sort.Strings(files)
	return files, nil
}
