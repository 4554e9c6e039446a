package survey

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RecordExt is the file extension of survey response files.
const RecordExt = ".json"

// ErrNoRecordsFound indicates that the input directory holds no response files.
var ErrNoRecordsFound = errors.New("no JSON files found")

// ErrInvalidRecordShape indicates a response file whose top level is not an object.
var ErrInvalidRecordShape = errors.New("does not contain an object at the top level")

// RecordError reports a problem with one response file.
type RecordError struct {
	Path string
	Err  error
}

// Error names the offending file.
func (err *RecordError) Error() string {
	return fmt.Sprintf("JSON file %s %v", err.Path, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *RecordError) Unwrap() error {
	return err.Err
}

// LoadDir reads every response file in dir, sorted by file name.
func LoadDir(dir string) ([]SourceRecord, error) {
	paths, err := ListRecordFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRecordsFound, dir)
	}
	records := make([]SourceRecord, 0, len(paths))
	for _, path := range paths {
		record, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, SourceRecord{
			Path:   path,
			Name:   filepath.Base(path),
			Record: record,
		})
	}
	return records, nil
}

// ListRecordFiles returns the response files in dir, sorted by name.
// Subdirectories are not searched.
func ListRecordFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != RecordExt {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}

// LoadFile parses one response file and checks that it holds an object.
func LoadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read record: %w", err)
	}
	var value JSONValue
	if err := json.Unmarshal(data, &value); err != nil {
		return Record{}, &RecordError{Path: path, Err: fmt.Errorf("is not valid JSON: %w", err)}
	}
	if value.Kind != JSONObject {
		return Record{}, &RecordError{Path: path, Err: ErrInvalidRecordShape}
	}
	return NewRecord(value), nil
}
