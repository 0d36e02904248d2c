package seedweaver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Seeder persists records decoded from fixture files through caller-supplied
// insertion callbacks. After each successful insertion it registers the
// returned identifier under the record's label, so later records may refer to
// it with a REF tag, within the same file or any file populated afterwards in
// the session.
//
// Records are inserted strictly in decoder order, one at a time: each
// identifier must be registered before the next record's tags resolve.
// Labels shared across files overwrite each other, last write wins.
type Seeder struct {
	// Filenames lists the files populated so far, in order.
	Filenames []string

	baseDir string
	reader  FileReader
	env     Environ
	logger  *slog.Logger
	refs    *Registry
}

// NewSeeder creates a Seeder with a fresh registry.
func NewSeeder(opts ...func(*Seeder)) *Seeder {
	s := &Seeder{
		reader: OSFileReader,
		env:    OSEnviron,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		refs:   NewRegistry(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// WithBaseDir sets the directory fixture filenames are resolved against.
func WithBaseDir(dir string) func(*Seeder) {
	return func(s *Seeder) { s.baseDir = dir }
}

// WithFileReader swaps the file-reading capability.
func WithFileReader(reader FileReader) func(*Seeder) {
	return func(s *Seeder) { s.reader = reader }
}

// WithEnviron swaps the environment capability used by ENV tags.
func WithEnviron(env Environ) func(*Seeder) {
	return func(s *Seeder) { s.env = env }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger *slog.Logger) func(*Seeder) {
	return func(s *Seeder) { s.logger = logger }
}

// Registry exposes the session's label-to-identifier mapping. Useful for
// pre-registering identifiers or inspecting what a session has inserted.
func (s *Seeder) Registry() *Registry { return s.refs }

// InsertFunc persists one record and returns its assigned identifier.
type InsertFunc[T, U any] func(record T) (U, error)

// InsertContextFunc is InsertFunc for context-aware persistence, e.g. an
// asynchronous database write the session must wait on.
type InsertContextFunc[T, U any] func(ctx context.Context, record T) (U, error)

// Populate loads the YAML fixture file, inserts every record through insert
// and returns the assigned identifiers in insertion order.
func Populate[T, U any](s *Seeder, filename string, insert InsertFunc[T, U]) ([]U, error) {
	return PopulateWith(s, filename, YAMLRecords[T], insert)
}

// PopulateWith is Populate with the decoder capability injected.
func PopulateWith[T, U any](s *Seeder, filename string, decode DecodeFunc[T], insert InsertFunc[T, U]) ([]U, error) {
	return populate(context.Background(), s, filename, decode, func(_ context.Context, record T) (U, error) {
		return insert(record)
	})
}

// PopulateContext is Populate for context-aware insertion callbacks. The
// context is handed to each callback as is; the session itself imposes no
// cancellation between records.
func PopulateContext[T, U any](ctx context.Context, s *Seeder, filename string, insert InsertContextFunc[T, U]) ([]U, error) {
	return populate(ctx, s, filename, YAMLRecords[T], insert)
}

// PopulateContextWith is PopulateContext with the decoder capability injected.
func PopulateContextWith[T, U any](ctx context.Context, s *Seeder, filename string, decode DecodeFunc[T], insert InsertContextFunc[T, U]) ([]U, error) {
	return populate(ctx, s, filename, decode, insert)
}

func populate[T, U any](ctx context.Context, s *Seeder, filename string, decode DecodeFunc[T], insert InsertContextFunc[T, U]) ([]U, error) {
	s.logger.Info("populating fixture file", "file", filename)

	raw, err := s.reader.ReadFile(filename, s.baseDir)
	if err != nil {
		return nil, err
	}

	text, err := resolveTags(raw, s.env, s.refs)
	if err != nil {
		return nil, fmt.Errorf("failed to pre-process embedded tags in %s: %w", filename, err)
	}

	records, err := decode(text)
	if err != nil {
		return nil, NewDecodeError(filename, err)
	}
	s.Filenames = append(s.Filenames, filename)

	ids := make([]U, 0, len(records))
	for _, rec := range records {
		id, err := insert(ctx, rec.Value)
		if err != nil {
			// identifiers registered by earlier records in this file stand;
			// undoing an external insertion is not the session's call
			return nil, NewCallbackError(filename, rec.Label, err)
		}
		s.refs.Insert(rec.Label, identifierText(id))
		ids = append(ids, id)
	}
	return ids, nil
}

// identifierText converts an assigned identifier to the text form stored in
// the registry. fmt.Stringer implementations use their String method, numeric
// identifiers their decimal form.
func identifierText(id any) string {
	return fmt.Sprint(id)
}
