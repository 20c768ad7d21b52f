package journal

import (
	"context"
	"fmt"
)

// Record is one journaled dispatch outcome. Names are stored in canonical
// URI form; MatchedPrefix and RegistrationID are only meaningful for the
// "handler" outcome and are zero otherwise.
type Record struct {
	Seq            int64
	Token          string
	Interest       string
	Outcome        string
	MatchedPrefix  string
	RegistrationID int64
}

// WriteDispatch inserts a dispatch record.
// Uses ON CONFLICT(seq) DO NOTHING for idempotency — a duplicate seq is
// silently ignored. Other constraint violations still return errors.
func (s *Store) WriteDispatch(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO dispatches
		(seq, token, interest, outcome, matched_prefix, registration_id)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(seq) DO NOTHING
	`,
		rec.Seq,
		rec.Token,
		rec.Interest,
		rec.Outcome,
		rec.MatchedPrefix,
		rec.RegistrationID,
	)
	if err != nil {
		return fmt.Errorf("write dispatch: %w", err)
	}

	return nil
}

// Dispatches returns every journaled record in dispatch order (seq
// ascending). Returns an empty slice, not nil, when the journal is empty.
func (s *Store) Dispatches(ctx context.Context) ([]Record, error) {
	return s.query(ctx, `
		SELECT seq, token, interest, outcome, matched_prefix, registration_id
		FROM dispatches
		ORDER BY seq ASC
	`)
}

// DispatchesForToken returns the records stamped with the given trace
// token, in dispatch order.
func (s *Store) DispatchesForToken(ctx context.Context, token string) ([]Record, error) {
	return s.query(ctx, `
		SELECT seq, token, interest, outcome, matched_prefix, registration_id
		FROM dispatches
		WHERE token = ?
		ORDER BY seq ASC
	`, token)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query dispatches: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.Seq,
			&rec.Token,
			&rec.Interest,
			&rec.Outcome,
			&rec.MatchedPrefix,
			&rec.RegistrationID,
		); err != nil {
			return nil, fmt.Errorf("scan dispatch: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatches: %w", err)
	}

	return records, nil
}
