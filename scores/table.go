package scores

import (
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
)

// Record is one finished match on the leaderboard
type Record struct {
	Score int    `json:"score"`
	Name  string `json:"name"`
	Time  string `json:"time"`
}

// Table is the leaderboard: highest score first, capped at constants.MaxScores
// Equal scores keep insertion order
type Table struct {
	Records []Record `json:"records"`
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{Records: make([]Record, 0, constants.MaxScores+1)}
}

// Add inserts a record and drops whatever falls past the cap
// Returns the 0-based rank, or -1 when the record did not make the table
func (t *Table) Add(r Record) int {
	t.normalize()
	rank := len(t.Records)
	for i, cur := range t.Records {
		if cur.Score < r.Score {
			rank = i
			break
		}
	}
	if rank >= constants.MaxScores {
		return -1
	}
	t.Records = append(t.Records, Record{})
	copy(t.Records[rank+1:], t.Records[rank:])
	t.Records[rank] = r
	t.normalize()
	return rank
}

// Qualifies reports whether a score would enter the table
func (t *Table) Qualifies(score int) bool {
	if len(t.Records) < constants.MaxScores {
		return true
	}
	return score > t.Records[len(t.Records)-1].Score
}

// Best returns the top record
func (t *Table) Best() (Record, bool) {
	if len(t.Records) == 0 {
		return Record{}, false
	}
	return t.Records[0], true
}

// Len returns the number of records
func (t *Table) Len() int {
	return len(t.Records)
}

func (t *Table) normalize() {
	sort.SliceStable(t.Records, func(i, j int) bool {
		return t.Records[i].Score > t.Records[j].Score
	})
	if len(t.Records) > constants.MaxScores {
		t.Records = t.Records[:constants.MaxScores]
	}
}

// FormatElapsed renders match time the way the leaderboard shows it, as m:ss
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
