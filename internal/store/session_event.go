package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type sessionRow struct {
	Timestamp       int64  `db:"timestamp"`
	SessionID       string `db:"session_id"`
	Action          string `db:"action"`
	SoundID         string `db:"sound_id"`
	Level           string `db:"level"`
	QuestionsServed int    `db:"questions_served"`
	CorrectAnswers  int    `db:"correct_answers"`
	DurationSecs    int    `db:"duration_secs"`
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert("session_events").
		Columns("sequence", "timestamp", "session_id", "action", "sound_id", "level",
			"questions_served", "correct_answers", "duration_secs").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Action, data.SoundID, data.Level,
			data.QuestionsServed, data.CorrectAnswers, data.DurationSecs).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	b := builder()
	sel := b.Select("timestamp", "session_id", "action", "sound_id", "level",
		"questions_served", "correct_answers", "duration_secs").
		From(b.Table("session_events")).
		Where(entsql.EQ("action", "end")).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	records := make([]SessionRecord, len(rows))
	for i, row := range rows {
		records[i] = SessionRecord{
			Timestamp: time.UnixMilli(row.Timestamp),
			SessionEventData: SessionEventData{
				SessionID:       row.SessionID,
				Action:          row.Action,
				SoundID:         row.SoundID,
				Level:           row.Level,
				QuestionsServed: row.QuestionsServed,
				CorrectAnswers:  row.CorrectAnswers,
				DurationSecs:    row.DurationSecs,
			},
		}
	}
	return records, nil
}
