package scores

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/lixenwraith/ferris-fighter/constants"
)

// PostgresStore keeps the table in a PostgreSQL scores table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, pings and ensures the schema exists
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		rank INTEGER PRIMARY KEY,
		score INTEGER NOT NULL,
		name TEXT NOT NULL,
		match_time TEXT NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// Load returns the top records in rank order
func (ps *PostgresStore) Load() (*Table, error) {
	rows, err := ps.db.Query(
		`SELECT score, name, match_time FROM scores ORDER BY score DESC, rank ASC LIMIT $1`,
		constants.MaxScores,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer rows.Close()

	t := NewTable()
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Score, &r.Name, &r.Time); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		t.Records = append(t.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	t.normalize()
	return t, nil
}

// Save replaces the stored table in one transaction
func (ps *PostgresStore) Save(t *Table) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM scores`); err != nil {
		return fmt.Errorf("clear scores: %w", err)
	}
	for i, r := range t.Records {
		_, err := tx.Exec(
			`INSERT INTO scores (rank, score, name, match_time) VALUES ($1, $2, $3, $4)`,
			i, r.Score, r.Name, r.Time,
		)
		if err != nil {
			return fmt.Errorf("insert score %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
