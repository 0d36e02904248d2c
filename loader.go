package seedweaver

import (
	"fmt"
	"io"
	"log/slog"
)

// StructLoader reads one fixture file, substitutes its embedded tags and
// holds the decoded records for point queries by label. A loader is
// single-shot: loading twice is an error, and queries before the first Load
// are too.
//
// Labels must be unique within the file, otherwise earlier records are
// shadowed by later ones.
type StructLoader[T any] struct {
	Filename string
	BaseDir  string

	reader FileReader
	env    Environ
	decode DecodeFunc[T]
	logger *slog.Logger

	records map[string]T
	labels  []string
	loaded  bool
}

// LoaderOption configures a StructLoader.
type LoaderOption[T any] func(*StructLoader[T])

// WithLoaderReader swaps the file-reading capability.
func WithLoaderReader[T any](reader FileReader) LoaderOption[T] {
	return func(l *StructLoader[T]) { l.reader = reader }
}

// WithLoaderEnviron swaps the environment capability used by ENV tags.
func WithLoaderEnviron[T any](env Environ) LoaderOption[T] {
	return func(l *StructLoader[T]) { l.env = env }
}

// WithLoaderDecoder swaps the decoder; the default decodes YAML.
func WithLoaderDecoder[T any](decode DecodeFunc[T]) LoaderOption[T] {
	return func(l *StructLoader[T]) { l.decode = decode }
}

// WithLoaderLogger sets the logger; the default discards everything.
func WithLoaderLogger[T any](logger *slog.Logger) LoaderOption[T] {
	return func(l *StructLoader[T]) { l.logger = logger }
}

// NewStructLoader creates a loader for filename under baseDir.
func NewStructLoader[T any](filename, baseDir string, opts ...LoaderOption[T]) *StructLoader[T] {
	l := &StructLoader[T]{
		Filename: filename,
		BaseDir:  baseDir,
		reader:   OSFileReader,
		env:      OSEnviron,
		decode:   YAMLRecords[T],
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads the file, substitutes tags against deps and decodes the result.
// deps supplies REF targets only; Load never writes to it. Calling Load on an
// already-populated loader fails with AlreadyLoadedError.
func (l *StructLoader[T]) Load(deps *Registry) error {
	l.logger.Info("loading fixture file", "file", l.Filename)

	if l.loaded {
		return &AlreadyLoadedError{Filename: l.Filename}
	}

	raw, err := l.reader.ReadFile(l.Filename, l.BaseDir)
	if err != nil {
		return err
	}

	text, err := resolveTags(raw, l.env, deps)
	if err != nil {
		return fmt.Errorf("failed to pre-process embedded tags in %s: %w", l.Filename, err)
	}

	records, err := l.decode(text)
	if err != nil {
		return NewDecodeError(l.Filename, err)
	}

	l.records = make(map[string]T, len(records))
	l.labels = make([]string, 0, len(records))
	for _, rec := range records {
		l.records[rec.Label] = rec.Value
		l.labels = append(l.labels, rec.Label)
	}
	l.loaded = true
	return nil
}

// Get returns the record loaded under label.
func (l *StructLoader[T]) Get(label string) (T, error) {
	var zero T
	if !l.loaded {
		return zero, &NotLoadedError{Filename: l.Filename}
	}
	record, ok := l.records[label]
	if !ok {
		return zero, &RecordNotFoundError{Filename: l.Filename, Label: label}
	}
	return record, nil
}

// All returns every loaded record keyed by label.
func (l *StructLoader[T]) All() (map[string]T, error) {
	if !l.loaded {
		return nil, &NotLoadedError{Filename: l.Filename}
	}
	return l.records, nil
}

// Labels returns the labels in the order the decoder produced them.
func (l *StructLoader[T]) Labels() ([]string, error) {
	if !l.loaded {
		return nil, &NotLoadedError{Filename: l.Filename}
	}
	return l.labels, nil
}
