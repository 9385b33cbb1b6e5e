// Package export maps finished-session results into the CSV artifact a
// learner downloads for review.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/pmprep/internal/csvio"
	"github.com/abhisek/pmprep/internal/session"
	"github.com/abhisek/pmprep/internal/store"
)

// Header is the fixed column layout of a session export.
var Header = []string{
	"id", "domain", "first_try_correct", "tries", "time_ms",
	"chosen", "question", "correct", "explanation",
}

// Rows builds the export table: the header plus one row per session
// question in session order. Questions without a recorded result (an
// abandoned exam, say) still get a row with the result columns empty.
func Rows(s *session.State) [][]string {
	rows := make([][]string, 0, len(s.Questions)+1)
	rows = append(rows, Header)

	for i, q := range s.Questions {
		row := []string{
			q.ID,
			string(q.Domain),
			"", "", "", "",
			q.Prompt,
			q.CorrectText(),
			q.Explanation,
		}
		if r := s.ResultFor(i); r != nil {
			row[2] = strconv.FormatBool(r.FirstTryCorrect)
			row[3] = strconv.Itoa(r.Tries)
			row[4] = strconv.Itoa(r.ElapsedMs)
			row[5] = joinIndices(r.AttemptLog)
		}
		rows = append(rows, row)
	}
	return rows
}

// Text renders the full export as CSV text.
func Text(s *session.State) string {
	return csvio.Encode(Rows(s))
}

// RecordRows builds the same export table from stored attempt records,
// for re-exporting a past session out of history.
func RecordRows(attempts []store.AttemptRecord) [][]string {
	rows := make([][]string, 0, len(attempts)+1)
	rows = append(rows, Header)

	for _, a := range attempts {
		row := []string{
			a.QuestionID,
			a.Domain,
			"", "", "", "",
			a.Question,
			a.CorrectText,
			a.Explanation,
		}
		if a.Answered {
			row[2] = strconv.FormatBool(a.FirstTryCorrect)
			row[3] = strconv.Itoa(a.Tries)
			row[4] = strconv.Itoa(a.TimeMs)
			row[5] = a.Chosen
		}
		rows = append(rows, row)
	}
	return rows
}

// RecordText renders stored attempts as CSV text.
func RecordText(attempts []store.AttemptRecord) string {
	return csvio.Encode(RecordRows(attempts))
}

// Filename returns the dated export name, e.g. pmp_session_2026-08-29.csv.
func Filename(now time.Time) string {
	return fmt.Sprintf("pmp_session_%s.csv", now.Format("2006-01-02"))
}

// WriteFile writes the export into dir using the dated filename and
// returns the full path.
func WriteFile(s *session.State, dir string) (string, error) {
	path := filepath.Join(dir, Filename(time.Now()))
	if err := os.WriteFile(path, []byte(Text(s)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

func joinIndices(indices []int) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, "|")
}
