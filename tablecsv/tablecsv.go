// SPDX-License-Identifier: MIT

// Package tablecsv reads and writes string records as comma-separated files.
//
// Output uses the encoding/csv defaults: comma delimiter, minimal quoting,
// \n record terminator. WriteFile never leaves a partial file behind.
package tablecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// DirPerm is used for missing parent directories.
	DirPerm os.FileMode = 0o755
	// FilePerm is the mode of written files.
	FilePerm os.FileMode = 0o644
)

// ErrRaggedRecords indicates records of unequal width.
var ErrRaggedRecords = errors.New("tablecsv: records have unequal width")

// Write encodes records to w. All records must have the width of the first.
func Write(w io.Writer, records [][]string) error {
	if err := checkWidth(records); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil { // WriteAll flushes
		return fmt.Errorf("tablecsv: %w", err)
	}

	return nil
}

// WriteFile writes records to path through a temporary file in the same
// directory, renamed into place only after a complete, synced write.
// Missing parent directories are created.
func WriteFile(path string, records [][]string) error {
	if err := checkWidth(records); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("tablecsv: create dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("tablecsv: create temp in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if err := Write(tmp, records); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("tablecsv: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tablecsv: close: %w", err)
	}
	if err := os.Chmod(tmpPath, FilePerm); err != nil {
		return fmt.Errorf("tablecsv: chmod: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("tablecsv: rename %s → %s: %w", tmpPath, path, err)
	}

	success = true
	return nil
}

// Read decodes every record from r. Records must have equal width.
func Read(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tablecsv: %w", err)
	}

	return records, nil
}

// ReadFile is Read on the file at path.
func ReadFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tablecsv: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func checkWidth(records [][]string) error {
	for i, rec := range records {
		if len(rec) != len(records[0]) {
			return fmt.Errorf("%w: record %d has %d fields, want %d", ErrRaggedRecords, i, len(rec), len(records[0]))
		}
	}

	return nil
}
