package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// JSONStore keeps the table as an indented JSON document
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
}

// NewJSONStore creates a JSON file store
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{filePath: filePath}
}

// Load reads the table; a missing file is an empty table
func (js *JSONStore) Load() (*Table, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	data, err := os.ReadFile(js.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	t := NewTable()
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	t.normalize()
	return t, nil
}

// Save writes the table
func (js *JSONStore) Save(t *Table) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	return writeFileAtomic(js.filePath, data)
}

// Close is a no-op
func (js *JSONStore) Close() error {
	return nil
}
