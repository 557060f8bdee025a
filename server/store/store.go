package store

import (
	"context"
	"embed"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(dsn string) (*DB, error) {
	p, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close(ctx context.Context)      { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

/* -----------------------------
   Session lifecycle
------------------------------*/

// CreateSession inserts a session row and returns its id.
func (db *DB) CreateSession(ctx context.Context, difficulty string, adaptive bool, rating float64) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
        INSERT INTO sessions(difficulty, adaptive, rating)
        VALUES ($1,$2,$3)
        RETURNING id
    `, difficulty, adaptive, rating).Scan(&id)
	return id, err
}

// EndSession stamps the session closed and records the final state.
func (db *DB) EndSession(ctx context.Context, id int64, difficulty string, rating float64) error {
	_, err := db.Exec(ctx, `
		UPDATE sessions
		   SET ended_at = now(),
		       difficulty = $2,
		       rating = $3
		 WHERE id = $1
	`, id, difficulty, rating)
	return err
}

// TouchSession keeps the stored difficulty and rating current mid-session.
func (db *DB) TouchSession(ctx context.Context, id int64, difficulty string, rating float64) error {
	_, err := db.Exec(ctx, `
		UPDATE sessions SET difficulty = $2, rating = $3 WHERE id = $1
	`, id, difficulty, rating)
	return err
}

/* -----------------------------
   Decisions
------------------------------*/

// DecisionRecord is one graded decision as persisted.
type DecisionRecord struct {
	SessionID    int64
	ScenarioName string
	Street       string
	Position     string
	Hand         string
	Board        []string
	Pot          float64
	CurrentBet   float64
	ChosenAction string
	BestAction   string
	Grade        string
	GradeValue   int
	Explanation  string
	Difficulty   string
	CreatedAt    time.Time
}

func (db *DB) InsertDecision(ctx context.Context, d DecisionRecord) error {
	board := d.Board
	if board == nil {
		board = []string{}
	}
	_, err := db.Exec(ctx, `
        INSERT INTO decisions(
            session_id, scenario_name, street, position, hand, board,
            pot, current_bet,
            chosen_action, best_action,
            grade, grade_value, explanation, difficulty
        ) VALUES (
            $1,$2,$3,$4,$5,$6,
            $7,$8,
            $9,$10,
            $11,$12,$13,$14
        )
    `,
		d.SessionID, d.ScenarioName, d.Street, d.Position, d.Hand, board,
		d.Pot, d.CurrentBet,
		d.ChosenAction, d.BestAction,
		d.Grade, d.GradeValue, d.Explanation, d.Difficulty,
	)
	return err
}

// RecentDecisions returns a session's latest graded decisions, newest first.
func (db *DB) RecentDecisions(ctx context.Context, sessionID int64, limit int) ([]DecisionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(ctx, `
		SELECT session_id, scenario_name, street, position, hand, board,
		       pot, current_bet,
		       chosen_action, best_action,
		       grade, grade_value, explanation, difficulty, created_at
		  FROM decisions
		 WHERE session_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DecisionRecord
	for rows.Next() {
		var d DecisionRecord
		if err := rows.Scan(
			&d.SessionID, &d.ScenarioName, &d.Street, &d.Position, &d.Hand, &d.Board,
			&d.Pot, &d.CurrentBet,
			&d.ChosenAction, &d.BestAction,
			&d.Grade, &d.GradeValue, &d.Explanation, &d.Difficulty, &d.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// SessionSummary aggregates a session's graded decisions.
type SessionSummary struct {
	SessionID  int64
	CreatedAt  time.Time
	EndedAt    *time.Time
	Difficulty string
	Rating     float64
	Decisions  int
	Good       int
	AvgGrade   float64
}

func (db *DB) GetSessionSummary(ctx context.Context, sessionID int64) (SessionSummary, error) {
	var s SessionSummary
	err := db.QueryRow(ctx, `
		SELECT session_id, created_at, ended_at, difficulty, rating,
		       decisions, good, avg_grade
		  FROM v_session_summary
		 WHERE session_id = $1
	`, sessionID).Scan(
		&s.SessionID, &s.CreatedAt, &s.EndedAt, &s.Difficulty, &s.Rating,
		&s.Decisions, &s.Good, &s.AvgGrade,
	)
	return s, err
}
