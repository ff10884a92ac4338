package wallet

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/Apicqq/Wallet/date"
)

// Store reads and writes the whole entry collection as one durable JSONL
// file. There is no incremental path: every mutation goes through LoadAll
// and SaveAll, and SaveAll replaces the entire persisted collection.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path. The file does not
// need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store persists to.
func (s *Store) Path() string { return s.path }

// LoadAll returns every entry in the store, in storage order.
//
// An absent file is the first-run case and yields an empty collection.
// Unreadable content also yields an empty collection, with a logged warning
// as the only trace of the discarded data; the next SaveAll overwrites it.
// Any other medium failure (permissions, path is a directory) propagates.
func (s *Store) LoadAll() ([]Entry, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open wallet store %q: %w", s.path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("could not stat wallet store %q: %w", s.path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("wallet store %q is a directory", s.path)
	}

	entries, err := DecodeEntries(f)
	if err != nil {
		log.Printf("warning: discarding unreadable wallet store %q: %v", s.path, err)
		return nil, nil
	}
	return entries, nil
}

// SaveAll replaces the persisted collection with the given entries.
//
// Every entry must carry a date that survives a reload: a zero or otherwise
// unparsable date would make the whole file unreadable, and the next LoadAll
// would discard it. SaveAll rejects such entries before touching the file.
func (s *Store) SaveAll(entries []Entry) error {
	for _, e := range entries {
		if _, err := date.Parse(e.Date.String()); err != nil {
			return fmt.Errorf("entry %q has unpersistable date %q: %w", e.ID, e.Date.String(), err)
		}
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for wallet store %q: %w", s.path, err)
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("could not open wallet store %q for writing: %w", s.path, err)
	}
	defer f.Close()

	if err := EncodeEntries(f, entries); err != nil {
		return fmt.Errorf("could not write wallet store %q: %w", s.path, err)
	}
	return nil
}
