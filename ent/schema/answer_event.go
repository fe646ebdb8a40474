package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a practice set.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping one sitting at a topic"),
		field.String("topic_id").
			NotEmpty().
			Comment("Topic this question belonged to"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.Float("correct_answer").
			Comment("Canonical answer"),
		field.String("user_answer").
			Comment("What the learner entered, as typed"),
		field.Bool("correct").
			Comment("Whether the answer was accepted"),
		field.Bool("tolerance_band").
			Default(false).
			Comment("Whether the question accepted a margin of error"),
		field.Bool("generated").
			Default(false).
			Comment("True for LLM-generated questions, false for catalog ones"),
		field.Int("time_secs").
			Comment("Whole seconds from question display to submit"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic_id"),
		index.Fields("correct"),
	}
}
