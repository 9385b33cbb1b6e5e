package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/pmprep/internal/session"
)

// SessionRecord is one row of the sessions table.
type SessionRecord struct {
	ID              string
	StartedAt       time.Time
	Mode            string
	Seed            int64
	Total           int
	FirstTryCorrect int
	AccuracyPct     int
	Duration        time.Duration
}

// AttemptRecord is one row of the attempts table, in session order.
type AttemptRecord struct {
	SessionID       string
	Position        int
	QuestionID      string
	Domain          string
	Question        string
	CorrectText     string
	Explanation     string
	Answered        bool
	FirstTryCorrect bool
	Tries           int
	TimeMs          int
	Chosen          string
	Flagged         bool
}

// SaveSession persists a finished session and its per-question attempts
// in one transaction.
func (s *Store) SaveSession(ctx context.Context, st *session.State, sum *session.Summary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, mode, seed, total, first_try_correct, accuracy_pct, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		st.ID, st.StartTime.UTC().Format(time.RFC3339), string(st.Mode), st.Seed,
		sum.Total, sum.FirstTryCorrect, sum.AccuracyPercent, sum.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for i, q := range st.Questions {
		var firstTry, tries, timeMs int
		var chosen string
		if r := st.ResultFor(i); r != nil {
			if r.FirstTryCorrect {
				firstTry = 1
			}
			tries = r.Tries
			timeMs = r.ElapsedMs
			chosen = joinAttemptLog(r.AttemptLog)
		} else {
			tries = -1 // unanswered marker
		}

		flagged := 0
		if st.Flags[q.ID] {
			flagged = 1
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO attempts (session_id, position, question_id, domain, question,
			   correct_text, explanation, first_try_correct, tries, time_ms, chosen, flagged)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			st.ID, i, q.ID, string(q.Domain), q.Prompt,
			q.CorrectText(), q.Explanation, firstTry, tries, timeMs, chosen, flagged,
		)
		if err != nil {
			return fmt.Errorf("insert attempt %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// RecentSessions returns session summaries, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, mode, seed, total, first_try_correct, accuracy_pct, duration_ms
		 FROM sessions ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var startedAt string
		var durMs int64
		if err := rows.Scan(&rec.ID, &startedAt, &rec.Mode, &rec.Seed,
			&rec.Total, &rec.FirstTryCorrect, &rec.AccuracyPct, &durMs); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		rec.Duration = time.Duration(durMs) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LatestSessionID returns the most recent session id, or "" if none.
func (s *Store) LatestSessionID(ctx context.Context) (string, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM sessions ORDER BY started_at DESC LIMIT 1`).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("latest session: %w", err)
	}
	return id, nil
}

// SessionAttempts returns the attempts of one session in position order.
func (s *Store) SessionAttempts(ctx context.Context, sessionID string) ([]AttemptRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, position, question_id, domain, question, correct_text,
		        explanation, first_try_correct, tries, time_ms, chosen, flagged
		 FROM attempts WHERE session_id = ? ORDER BY position`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var firstTry, flagged int
		if err := rows.Scan(&rec.SessionID, &rec.Position, &rec.QuestionID, &rec.Domain,
			&rec.Question, &rec.CorrectText, &rec.Explanation,
			&firstTry, &rec.Tries, &rec.TimeMs, &rec.Chosen, &flagged); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		rec.FirstTryCorrect = firstTry == 1
		rec.Flagged = flagged == 1
		rec.Answered = rec.Tries >= 0
		if !rec.Answered {
			rec.Tries = 0
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LLMRequestData captures one LLM API call for the request log.
type LLMRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AppendLLMRequest records an LLM API call.
func (s *Store) AppendLLMRequest(ctx context.Context, data LLMRequestData) error {
	success := 0
	if data.Success {
		success = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_requests (created_at, provider, model, purpose, input_tokens,
		   output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, success, data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

// LLMRequestRecord is one row of the llm_requests table.
type LLMRequestRecord struct {
	CreatedAt time.Time
	LLMRequestData
}

// RecentLLMRequests returns logged LLM API calls, newest first.
func (s *Store) RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, provider, model, purpose, input_tokens, output_tokens,
		        latency_ms, success, error_message
		 FROM llm_requests ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query llm requests: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestRecord
	for rows.Next() {
		var rec LLMRequestRecord
		var createdAt string
		var success int
		if err := rows.Scan(&createdAt, &rec.Provider, &rec.Model, &rec.Purpose,
			&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &success, &rec.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan llm request: %w", err)
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		rec.Success = success == 1
		out = append(out, rec)
	}
	return out, rows.Err()
}

func joinAttemptLog(log []int) string {
	parts := make([]string, len(log))
	for i, idx := range log {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "|")
}
