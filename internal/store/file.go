package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/habitkeep/internal/filex"
	"github.com/dmitrijs2005/habitkeep/internal/logging"
)

// BackupSuffix is appended to the data file name when an unreadable file
// is quarantined.
const BackupSuffix = ".bak"

// FileStore reads and writes the store document at a fixed location inside
// a dedicated data directory, creating the directory on demand.
type FileStore struct {
	dir  string
	file string
	log  logging.Logger
}

func NewFileStore(dir, file string, log logging.Logger) *FileStore {
	return &FileStore{dir: dir, file: file, log: log}
}

// Path returns the location of the data file. The data directory is not
// resolved, so a relative configured dir stays relative here.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.file)
}

// BackupPath returns the quarantine location used for unreadable files.
func (s *FileStore) BackupPath() string {
	return s.Path() + BackupSuffix
}

// Load reads the persisted document. It never fails:
//
//   - no file yet: a fresh empty document
//   - unreadable or invalid JSON: the file is renamed to the backup path
//     (overwriting any earlier backup) and a fresh document is returned;
//     quarantined reports this so the shell can warn the user
//   - valid JSON that is not an object, or lacks a "habits" field: treated
//     as absent, fresh document
//   - "habits" present but not a list: coerced to an empty list
//   - stale schema version: stamped to the current version
func (s *FileStore) Load(ctx context.Context) (doc *Document, quarantined bool) {
	if _, err := filex.EnsureDir(s.dir); err != nil {
		s.log.Warn(ctx, "could not create data directory", "dir", s.dir, "error", err)
		return NewDocument(), false
	}

	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return NewDocument(), false
	}
	if err != nil {
		return NewDocument(), s.quarantine(ctx)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		// A non-object top level is valid JSON in the wrong shape; only
		// genuinely unparseable content gets quarantined.
		if json.Valid(data) {
			return NewDocument(), false
		}
		return NewDocument(), s.quarantine(ctx)
	}

	rawHabits, ok := top["habits"]
	if !ok {
		return NewDocument(), false
	}

	doc = NewDocument()
	var entries []json.RawMessage
	if err := json.Unmarshal(rawHabits, &entries); err == nil {
		doc.Habits = entries
	}
	// Version is always stamped to SchemaVersion by NewDocument; a stale
	// tag in the file needs no migration beyond that.
	return doc, false
}

// quarantine moves the unreadable data file aside instead of deleting it.
// The rename is best effort; on failure the next save overwrites in place.
func (s *FileStore) quarantine(ctx context.Context) bool {
	if err := os.Rename(s.Path(), s.BackupPath()); err != nil {
		s.log.Warn(ctx, "could not back up corrupted data file", "path", s.Path(), "error", err)
		return false
	}
	s.log.Warn(ctx, "data file was corrupted, backed up", "backup", s.BackupPath())
	return true
}

// Save rewrites the whole document in place. Unlike Load, I/O errors are
// returned: silently losing writes would be worse than aborting the
// current operation.
func (s *FileStore) Save(ctx context.Context, doc *Document) error {
	if _, err := filex.EnsureDir(s.dir); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.Path(), data, 0o660)
}
