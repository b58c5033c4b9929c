package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Halasue/endfield-aic-calculator/internal/domain/production"
)

// Format is a dataset file encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported dataset file extension: %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode parses dataset bytes in the given format
func Decode(data []byte, format Format) (*production.Dataset, error) {
	var records fileRecords

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", format)
	}

	return records.toDataset(), nil
}

// Encode writes a dataset in the given format
func Encode(dataset *production.Dataset, format Format) ([]byte, error) {
	records := recordsFromDataset(dataset)

	switch format {
	case FormatJSON:
		return json.MarshalIndent(records, "", "  ")
	case FormatYAML:
		return yaml.Marshal(records)
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", format)
	}
}

// Reader reads dataset files, choosing the format by extension
type Reader struct{}

// NewReader creates a dataset file reader
func NewReader() *Reader {
	return &Reader{}
}

// ReadFile reads and parses a dataset file
func (r *Reader) ReadFile(path string) (*production.Dataset, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	return Decode(data, format)
}

// FileSource serves a dataset file as a catalog source
type FileSource struct {
	Path   string
	reader *Reader
}

// NewFileSource creates a dataset source backed by a file
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, reader: NewReader()}
}

// Load reads the dataset file
func (s *FileSource) Load(ctx context.Context) (*production.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.reader.ReadFile(s.Path)
}
