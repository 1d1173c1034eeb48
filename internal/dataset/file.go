package dataset

import (
	"context"
	"fmt"
	"os"

	"pitchview/internal/domain"
)

// FileSource loads the dataset from a local CSV file.
type FileSource struct {
	path string
}

// NewFileSource constructs a FileSource for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name identifies the source in logs and metrics.
func (s *FileSource) Name() string { return "file" }

// Load reads and decodes the file. The context is accepted for interface
// symmetry; local reads are not cancelable mid-parse.
func (s *FileSource) Load(ctx context.Context) ([]domain.Player, error) {
	_ = ctx

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	players, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return players, nil
}
