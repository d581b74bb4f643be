package scores

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleTable() *Table {
	tbl := NewTable()
	tbl.Add(Record{Score: 120, Name: "FERRIS", Time: "2:05"})
	tbl.Add(Record{Score: 300, Name: "CRAB", Time: "5:00"})
	tbl.Add(Record{Score: 10, Name: "ANON", Time: "0:12"})
	return tbl
}

func TestStores_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	stores := map[string]Store{
		"file": NewFileStore(filepath.Join(dir, "scores.txt")),
		"json": NewJSONStore(filepath.Join(dir, "nested", "scores.json")),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			empty, err := store.Load()
			if err != nil {
				t.Fatalf("load missing file: %v", err)
			}
			if empty.Len() != 0 {
				t.Fatalf("missing file loaded %d records", empty.Len())
			}

			want := sampleTable()
			if err := store.Save(want); err != nil {
				t.Fatalf("save: %v", err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !reflect.DeepEqual(got.Records, want.Records) {
				t.Errorf("round trip = %+v, want %+v", got.Records, want.Records)
			}
			if err := store.Close(); err != nil {
				t.Errorf("close: %v", err)
			}
		})
	}
}

func TestFileStore_LineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	store := NewFileStore(path)

	tbl := NewTable()
	tbl.Add(Record{Score: 42, Name: "A|B", Time: "1:00"})
	if err := store.Save(tbl); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "42|A B|1:00\n" {
		t.Errorf("file = %q", data)
	}
}

func TestFileStore_ReadsUnsortedAndRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("5|LOW|0:05\n\n90|HIGH|1:30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Len() != 2 || tbl.Records[0].Name != "HIGH" {
		t.Errorf("records = %+v", tbl.Records)
	}

	if err := os.WriteFile(path, []byte("not a score\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed", err)
	}
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("FERRIS_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FERRIS_TEST_POSTGRES_DSN not set")
	}
	store, err := NewPostgresStore(dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer store.Close()

	want := sampleTable()
	if err := store.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got.Records, want.Records) {
		t.Errorf("round trip = %+v, want %+v", got.Records, want.Records)
	}
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()
	if s, err := Open(BackendFile, filepath.Join(dir, "a"), ""); err != nil {
		t.Errorf("file backend: %v", err)
	} else if _, ok := s.(*FileStore); !ok {
		t.Errorf("file backend returned %T", s)
	}
	if s, err := Open(BackendJSON, filepath.Join(dir, "b"), ""); err != nil {
		t.Errorf("json backend: %v", err)
	} else if _, ok := s.(*JSONStore); !ok {
		t.Errorf("json backend returned %T", s)
	}
	if _, err := Open("redis", "", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("err = %v, want ErrUnknownBackend", err)
	}
}
