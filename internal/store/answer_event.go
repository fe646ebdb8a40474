package store

import (
	"context"
	"fmt"

	"github.com/karthikv/numbersense/ent"
	"github.com/karthikv/numbersense/ent/answerevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopicID(data.TopicID).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetUserAnswer(data.UserAnswer).
		SetCorrect(data.Correct).
		SetToleranceBand(data.ToleranceBand).
		SetGenerated(data.Generated).
		SetTimeSecs(data.TimeSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerRecord, error) {
	q := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(answerevent.SequenceGT(opts.After))
	}
	if !opts.From.IsZero() {
		q = q.Where(answerevent.TimestampGTE(opts.From))
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	out := make([]AnswerRecord, 0, len(events))
	for _, e := range events {
		out = append(out, AnswerRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			AnswerEventData: AnswerEventData{
				SessionID:     e.SessionID,
				TopicID:       e.TopicID,
				QuestionText:  e.QuestionText,
				CorrectAnswer: e.CorrectAnswer,
				UserAnswer:    e.UserAnswer,
				Correct:       e.Correct,
				ToleranceBand: e.ToleranceBand,
				Generated:     e.Generated,
				TimeSecs:      e.TimeSecs,
			},
		})
	}
	return out, nil
}
