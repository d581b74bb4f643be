package scores

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps scores as score|name|time lines
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a line-format store at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the table; a missing file is an empty table
func (s *FileStore) Load() (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}
	return parseLines(data)
}

// Save writes the table, replacing the file atomically
func (s *FileStore) Save(t *Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	for _, r := range t.Records {
		fmt.Fprintf(&buf, "%d|%s|%s\n", r.Score, sanitize(r.Name), sanitize(r.Time))
	}
	return writeFileAtomic(s.path, buf.Bytes())
}

// Close is a no-op
func (s *FileStore) Close() error {
	return nil
}

func parseLines(data []byte) (*Table, error) {
	t := NewTable()
	sc := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		parts := strings.SplitN(text, "|", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: want score|name|time", ErrMalformed, line)
		}
		score, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		t.Records = append(t.Records, Record{Score: score, Name: parts[1], Time: parts[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan scores: %w", err)
	}
	t.normalize()
	return t, nil
}

// sanitize strips the field and record separators
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '|', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

func writeFileAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace scores: %w", err)
	}
	return nil
}
