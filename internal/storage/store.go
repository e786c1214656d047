// Package storage provides the persistence layer for abtrack: two
// whole-document JSON files, one holding the employee records and one the
// absence-code catalog. Documents are read in full at startup and written in
// full on explicit save; there is no incremental format.
package storage

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"abtrack/internal/errors"
	"abtrack/internal/logging"
	"abtrack/internal/model"
)

const (
	// AppName is the application name used for data directories.
	AppName = "abtrack"

	// EmployeesFile is the employee records document name.
	EmployeesFile = "employees.json"
	// CodesFile is the absence-code catalog document name.
	CodesFile = "codes.json"
)

// Store reads and writes the two JSON documents under a data directory.
type Store struct {
	dir string
}

// DefaultDir returns the default data directory following the XDG spec.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// New creates a store rooted at the given directory. An empty dir uses the
// default XDG location.
func New(dir string) *Store {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Store{dir: dir}
}

// Dir returns the store's data directory.
func (s *Store) Dir() string {
	return s.dir
}

// EmployeesPath returns the full path of the employee records document.
func (s *Store) EmployeesPath() string {
	return filepath.Join(s.dir, EmployeesFile)
}

// CodesPath returns the full path of the code catalog document.
func (s *Store) CodesPath() string {
	return filepath.Join(s.dir, CodesFile)
}

// Init creates the data directory and writes empty documents for any that do
// not exist yet. Existing documents are left untouched.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return errors.NewSystemErrorWithOp("init", "cannot create data directory", err)
	}
	for _, path := range []string{s.EmployeesPath(), s.CodesPath()} {
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := writeDocument(path, []any{}); err != nil {
			return err
		}
	}
	return nil
}

// LoadEmployees reads the employee records document. A missing, unreadable,
// or malformed document fails fast; silently defaulting to an empty state
// would mask data loss.
func (s *Store) LoadEmployees() ([]*model.Employee, error) {
	var employees []*model.Employee
	if err := readDocument(s.EmployeesPath(), &employees); err != nil {
		return nil, err
	}
	logging.Logger().Debug("loaded employees", "path", s.EmployeesPath(), "count", len(employees))
	return employees, nil
}

// LoadCodes reads the absence-code catalog document.
func (s *Store) LoadCodes() ([]model.CodeEntry, error) {
	var codes []model.CodeEntry
	if err := readDocument(s.CodesPath(), &codes); err != nil {
		return nil, err
	}
	logging.Logger().Debug("loaded codes", "path", s.CodesPath(), "count", len(codes))
	return codes, nil
}

// SaveEmployees overwrites the employee records document in full.
func (s *Store) SaveEmployees(employees []*model.Employee) error {
	if employees == nil {
		employees = []*model.Employee{}
	}
	return writeDocument(s.EmployeesPath(), employees)
}

// SaveCodes overwrites the code catalog document in full.
func (s *Store) SaveCodes(codes []model.CodeEntry) error {
	if codes == nil {
		codes = []model.CodeEntry{}
	}
	return writeDocument(s.CodesPath(), codes)
}

// readDocument reads and unmarshals one JSON document into v.
func readDocument(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.NewSystemErrorWithOp("load", "data file not found: "+path, errors.ErrDocumentNotFound)
		}
		if errors.Is(err, fs.ErrPermission) {
			return errors.NewSystemErrorWithOp("load", "cannot read "+path, errors.ErrPermissionDenied)
		}
		return errors.NewSystemErrorWithOp("load", "cannot read "+path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.NewSystemErrorWithOp("load", "cannot parse "+path, errors.ErrDocumentCorrupt)
	}
	return nil
}

// writeDocument marshals v as pretty-printed two-space JSON and replaces the
// document atomically (temp file + rename), so a failed write retains the
// prior document.
func writeDocument(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.NewSystemErrorWithOp("save", "cannot encode "+path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.NewSystemErrorWithOp("save", "cannot create temp file for "+path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewSystemErrorWithOp("save", "cannot write "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewSystemErrorWithOp("save", "cannot write "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.NewSystemErrorWithOp("save", "cannot replace "+path, err)
	}

	logging.Logger().Debug("saved document", "path", path)
	return nil
}
