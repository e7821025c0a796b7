package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmoiron/sqlx"
)

// eventRepo implements EventRepo on the event tables.
type eventRepo struct {
	db  *sqlx.DB
	seq *sequenceCounter
}

type answerRow struct {
	Sequence     int64   `db:"sequence"`
	Timestamp    int64   `db:"timestamp"`
	SessionID    string  `db:"session_id"`
	SoundID      string  `db:"sound_id"`
	Level        string  `db:"level"`
	Position     string  `db:"position"`
	Correct      bool    `db:"correct"`
	Selected     string  `db:"selected"`
	ConfusedWith string  `db:"confused_with"`
	Similarity   float64 `db:"similarity"`
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert("answer_events").
		Columns("sequence", "timestamp", "session_id", "sound_id", "level", "position",
			"correct", "selected", "confused_with", "similarity").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.SoundID, data.Level, data.Position,
			data.Correct, data.Selected, data.ConfusedWith, data.Similarity).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, soundID string, limit int) ([]AnswerEvent, error) {
	b := builder()
	sel := b.Select("sequence", "timestamp", "session_id", "sound_id", "level", "position",
		"correct", "selected", "confused_with", "similarity").
		From(b.Table("answer_events")).
		OrderBy(entsql.Desc("sequence"))
	if soundID != "" {
		sel = sel.Where(entsql.EQ("sound_id", soundID))
	}
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	var rows []answerRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	events := make([]AnswerEvent, len(rows))
	for i, row := range rows {
		events[i] = AnswerEvent{
			Sequence:  row.Sequence,
			Timestamp: time.UnixMilli(row.Timestamp),
			AnswerEventData: AnswerEventData{
				SessionID:    row.SessionID,
				SoundID:      row.SoundID,
				Level:        row.Level,
				Position:     row.Position,
				Correct:      row.Correct,
				Selected:     row.Selected,
				ConfusedWith: row.ConfusedWith,
				Similarity:   row.Similarity,
			},
		}
	}
	return events, nil
}

func (r *eventRepo) CountAnswers(ctx context.Context, soundID string) (int, int, error) {
	count := func(correctOnly bool) (int, error) {
		b := builder()
		sel := b.Select(entsql.Count("*")).From(b.Table("answer_events"))
		var preds []*entsql.Predicate
		if soundID != "" {
			preds = append(preds, entsql.EQ("sound_id", soundID))
		}
		if correctOnly {
			preds = append(preds, entsql.EQ("correct", true))
		}
		if len(preds) > 0 {
			sel = sel.Where(entsql.And(preds...))
		}
		query, args := sel.Query()
		var n int
		if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
			return 0, fmt.Errorf("count answers: %w", err)
		}
		return n, nil
	}

	total, err := count(false)
	if err != nil {
		return 0, 0, err
	}
	correct, err := count(true)
	if err != nil {
		return 0, 0, err
	}
	return total, correct, nil
}

func (r *eventRepo) AppendMasteryEvent(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert("mastery_events").
		Columns("sequence", "timestamp", "session_id", "sound_id", "level",
			"from_status", "to_status", "reason").
		Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.SoundID, data.Level,
			data.FromStatus, data.ToStatus, data.Trigger).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}
