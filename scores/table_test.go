package scores

import (
	"testing"
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
)

func TestTable_SortedAndCapped(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < 15; i++ {
		tbl.Add(Record{Score: (i * 37) % 100, Name: "P", Time: "0:10"})
	}

	if tbl.Len() != constants.MaxScores {
		t.Fatalf("len = %d, want %d", tbl.Len(), constants.MaxScores)
	}
	for i := 1; i < tbl.Len(); i++ {
		if tbl.Records[i].Score > tbl.Records[i-1].Score {
			t.Fatalf("not descending at %d: %v", i, tbl.Records)
		}
	}
}

func TestTable_TiesKeepInsertionOrder(t *testing.T) {
	tbl := NewTable()
	tbl.Add(Record{Score: 50, Name: "FIRST"})
	tbl.Add(Record{Score: 50, Name: "SECOND"})
	tbl.Add(Record{Score: 70, Name: "TOP"})

	want := []string{"TOP", "FIRST", "SECOND"}
	for i, n := range want {
		if tbl.Records[i].Name != n {
			t.Errorf("slot %d = %s, want %s", i, tbl.Records[i].Name, n)
		}
	}
}

func TestTable_AddRankAndQualifies(t *testing.T) {
	tbl := NewTable()
	for i := 0; i < constants.MaxScores; i++ {
		tbl.Add(Record{Score: 100 + i})
	}
	if tbl.Qualifies(100) {
		t.Error("score equal to the lowest should not qualify on a full table")
	}
	if rank := tbl.Add(Record{Score: 5, Name: "LOW"}); rank != -1 {
		t.Errorf("rank = %d, want -1 for a score off the table", rank)
	}
	if rank := tbl.Add(Record{Score: 1000, Name: "HIGH"}); rank != 0 {
		t.Errorf("rank = %d, want 0", rank)
	}
	best, ok := tbl.Best()
	if !ok || best.Name != "HIGH" {
		t.Errorf("best = %+v", best)
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{61500 * time.Millisecond, "1:01"},
		{5 * time.Minute, "5:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTable_AddDuplicatePastCap(t *testing.T) {
	tbl := NewTable()
	r := Record{Score: 100, Name: "A", Time: "1:00"}
	for i := 0; i < constants.MaxScores; i++ {
		if rank := tbl.Add(r); rank != i {
			t.Fatalf("copy %d rank = %d, want %d", i, rank, i)
		}
	}

	if rank := tbl.Add(r); rank != -1 {
		t.Errorf("rank past cap = %d, want -1", rank)
	}
	if tbl.Len() != constants.MaxScores {
		t.Errorf("len = %d, want %d", tbl.Len(), constants.MaxScores)
	}

	if rank := tbl.Add(Record{Score: 101, Name: "B", Time: "1:00"}); rank != 0 {
		t.Errorf("higher score rank = %d, want 0", rank)
	}
	if tbl.Len() != constants.MaxScores || tbl.Records[0].Name != "B" {
		t.Errorf("records = %+v", tbl.Records)
	}
}
