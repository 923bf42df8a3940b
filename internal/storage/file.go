package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/brsaude/patient-intake/internal/patients"
	"github.com/brsaude/patient-intake/pkg/logging"
)

// FileStore keeps the record set in a single local JSON file, for
// development and single-host deployments. The file and its directory
// are created on first access; a CSV rendering is kept beside it.
type FileStore struct {
	path   string
	logger *logging.Logger
}

// NewFileStore creates a file-backed repository at path.
func NewFileStore(path string, logger *logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads and decodes the record set, creating an empty store if the
// file does not exist yet. A corrupt file loads as an empty set.
func (s *FileStore) Load(ctx context.Context) ([]patients.Patient, error) {
	if err := s.ensure(); err != nil {
		return nil, s.configError(err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, s.configError(err)
	}

	var set []patients.Patient
	if err := json.Unmarshal(data, &set); err != nil {
		s.logger.Warn("corrupt patient store, starting empty",
			"path", s.path,
			"error", err,
		)
		return []patients.Patient{}, nil
	}
	if set == nil {
		set = []patients.Patient{}
	}
	return set, nil
}

// Save writes the full record set and rewrites the sibling CSV file.
func (s *FileStore) Save(ctx context.Context, set []patients.Patient) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return s.configError(err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return s.configError(err)
	}

	if err := os.WriteFile(s.csvPath(), []byte(patients.ToCSV(set)), 0o644); err != nil {
		return s.configError(err)
	}
	return nil
}

func (s *FileStore) csvPath() string {
	return strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".csv"
}

func (s *FileStore) ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return os.WriteFile(s.path, []byte("[]"), 0o644)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *FileStore) configError(err error) *ConfigError {
	return &ConfigError{
		Backend:     "file",
		Remediation: "check that STORAGE_DATA_FILE points to a writable path",
		Err:         err,
	}
}
