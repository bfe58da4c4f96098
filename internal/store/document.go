// This file provides type document read/write helpers with atomic
// persistence.
// Implements: prd002-store-backend R2 (document format), R5.2 (atomic
// write).
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadDocument reads a type document: a JSON array of declaration
// records. Entries that are not JSON objects are skipped, matching the
// load policy of dropping declarations that cannot be interpreted. A
// file that is not a JSON array at all is an error.
func ReadDocument(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var entries []any
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	records := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if record, ok := entry.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// WriteDocument atomically writes a type document using the temp-file,
// rename pattern. A nil record list writes an empty array, never "null":
// readers of the external format expect an array.
func WriteDocument(path string, records []map[string]any) error {
	if records == nil {
		records = []map[string]any{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding type document: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".propertytypes-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing type document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing type document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
