// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/karthikv/numbersense/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *AnswerEventCreate) SetTopicID(v string) *AnswerEventCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *AnswerEventCreate) SetQuestionText(v string) *AnswerEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AnswerEventCreate) SetCorrectAnswer(v float64) *AnswerEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *AnswerEventCreate) SetUserAnswer(v string) *AnswerEventCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AnswerEventCreate) SetCorrect(v bool) *AnswerEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetToleranceBand sets the "tolerance_band" field.
func (_c *AnswerEventCreate) SetToleranceBand(v bool) *AnswerEventCreate {
	_c.mutation.SetToleranceBand(v)
	return _c
}

// SetNillableToleranceBand sets the "tolerance_band" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableToleranceBand(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetToleranceBand(*v)
	}
	return _c
}

// SetGenerated sets the "generated" field.
func (_c *AnswerEventCreate) SetGenerated(v bool) *AnswerEventCreate {
	_c.mutation.SetGenerated(v)
	return _c
}

// SetNillableGenerated sets the "generated" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableGenerated(v *bool) *AnswerEventCreate {
	if v != nil {
		_c.SetGenerated(*v)
	}
	return _c
}

// SetTimeSecs sets the "time_secs" field.
func (_c *AnswerEventCreate) SetTimeSecs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeSecs(v)
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.ToleranceBand(); !ok {
		v := answerevent.DefaultToleranceBand
		_c.mutation.SetToleranceBand(v)
	}
	if _, ok := _c.mutation.Generated(); !ok {
		v := answerevent.DefaultGenerated
		_c.mutation.SetGenerated(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "AnswerEvent.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := answerevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "AnswerEvent.question_text"`)}
	}
	if v, ok := _c.mutation.QuestionText(); ok {
		if err := answerevent.QuestionTextValidator(v); err != nil {
			return &ValidationError{Name: "question_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AnswerEvent.correct_answer"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "AnswerEvent.user_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AnswerEvent.correct"`)}
	}
	if _, ok := _c.mutation.ToleranceBand(); !ok {
		return &ValidationError{Name: "tolerance_band", err: errors.New(`ent: missing required field "AnswerEvent.tolerance_band"`)}
	}
	if _, ok := _c.mutation.Generated(); !ok {
		return &ValidationError{Name: "generated", err: errors.New(`ent: missing required field "AnswerEvent.generated"`)}
	}
	if _, ok := _c.mutation.TimeSecs(); !ok {
		return &ValidationError{Name: "time_secs", err: errors.New(`ent: missing required field "AnswerEvent.time_secs"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(answerevent.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(answerevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeFloat64, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(answerevent.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ToleranceBand(); ok {
		_spec.SetField(answerevent.FieldToleranceBand, field.TypeBool, value)
		_node.ToleranceBand = value
	}
	if value, ok := _c.mutation.Generated(); ok {
		_spec.SetField(answerevent.FieldGenerated, field.TypeBool, value)
		_node.Generated = value
	}
	if value, ok := _c.mutation.TimeSecs(); ok {
		_spec.SetField(answerevent.FieldTimeSecs, field.TypeInt, value)
		_node.TimeSecs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerEventCreate) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertOne {
	_c.conflict = opts
	return &AnswerEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerEventCreate) OnConflictColumns(columns ...string) *AnswerEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertOne{
		create: _c,
	}
}

type (
	// AnswerEventUpsertOne is the builder for "upsert"-ing
	//  one AnswerEvent node.
	AnswerEventUpsertOne struct {
		create *AnswerEventCreate
	}

	// AnswerEventUpsert is the "OnConflict" setter.
	AnswerEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsert) SetSessionID(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateSessionID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldSessionID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *AnswerEventUpsert) SetTopicID(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateTopicID() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldTopicID)
	return u
}

// SetQuestionText sets the "question_text" field.
func (u *AnswerEventUpsert) SetQuestionText(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldQuestionText, v)
	return u
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateQuestionText() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldQuestionText)
	return u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *AnswerEventUpsert) SetCorrectAnswer(v float64) *AnswerEventUpsert {
	u.Set(answerevent.FieldCorrectAnswer, v)
	return u
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateCorrectAnswer() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldCorrectAnswer)
	return u
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *AnswerEventUpsert) AddCorrectAnswer(v float64) *AnswerEventUpsert {
	u.Add(answerevent.FieldCorrectAnswer, v)
	return u
}

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerEventUpsert) SetUserAnswer(v string) *AnswerEventUpsert {
	u.Set(answerevent.FieldUserAnswer, v)
	return u
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateUserAnswer() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldUserAnswer)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsert) SetCorrect(v bool) *AnswerEventUpsert {
	u.Set(answerevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateCorrect() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldCorrect)
	return u
}

// SetToleranceBand sets the "tolerance_band" field.
func (u *AnswerEventUpsert) SetToleranceBand(v bool) *AnswerEventUpsert {
	u.Set(answerevent.FieldToleranceBand, v)
	return u
}

// UpdateToleranceBand sets the "tolerance_band" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateToleranceBand() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldToleranceBand)
	return u
}

// SetGenerated sets the "generated" field.
func (u *AnswerEventUpsert) SetGenerated(v bool) *AnswerEventUpsert {
	u.Set(answerevent.FieldGenerated, v)
	return u
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateGenerated() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldGenerated)
	return u
}

// SetTimeSecs sets the "time_secs" field.
func (u *AnswerEventUpsert) SetTimeSecs(v int) *AnswerEventUpsert {
	u.Set(answerevent.FieldTimeSecs, v)
	return u
}

// UpdateTimeSecs sets the "time_secs" field to the value that was provided on create.
func (u *AnswerEventUpsert) UpdateTimeSecs() *AnswerEventUpsert {
	u.SetExcluded(answerevent.FieldTimeSecs)
	return u
}

// AddTimeSecs adds v to the "time_secs" field.
func (u *AnswerEventUpsert) AddTimeSecs(v int) *AnswerEventUpsert {
	u.Add(answerevent.FieldTimeSecs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertOne) UpdateNewValues() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(answerevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(answerevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnswerEventUpsertOne) Ignore() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertOne) DoNothing() *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreate.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertOne) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsertOne) SetSessionID(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateSessionID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *AnswerEventUpsertOne) SetTopicID(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateTopicID() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTopicID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *AnswerEventUpsertOne) SetQuestionText(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateQuestionText() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateQuestionText()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *AnswerEventUpsertOne) SetCorrectAnswer(v float64) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *AnswerEventUpsertOne) AddCorrectAnswer(v float64) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateCorrectAnswer() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerEventUpsertOne) SetUserAnswer(v string) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateUserAnswer() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertOne) SetCorrect(v bool) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateCorrect() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetToleranceBand sets the "tolerance_band" field.
func (u *AnswerEventUpsertOne) SetToleranceBand(v bool) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetToleranceBand(v)
	})
}

// UpdateToleranceBand sets the "tolerance_band" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateToleranceBand() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateToleranceBand()
	})
}

// SetGenerated sets the "generated" field.
func (u *AnswerEventUpsertOne) SetGenerated(v bool) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetGenerated(v)
	})
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateGenerated() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateGenerated()
	})
}

// SetTimeSecs sets the "time_secs" field.
func (u *AnswerEventUpsertOne) SetTimeSecs(v int) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTimeSecs(v)
	})
}

// AddTimeSecs adds v to the "time_secs" field.
func (u *AnswerEventUpsertOne) AddTimeSecs(v int) *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddTimeSecs(v)
	})
}

// UpdateTimeSecs sets the "time_secs" field to the value that was provided on create.
func (u *AnswerEventUpsertOne) UpdateTimeSecs() *AnswerEventUpsertOne {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTimeSecs()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnswerEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnswerEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnswerEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnswerEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *AnswerEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnswerEventUpsertBulk {
	_c.conflict = opts
	return &AnswerEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnswerEventCreateBulk) OnConflictColumns(columns ...string) *AnswerEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnswerEventUpsertBulk{
		create: _c,
	}
}

// AnswerEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AnswerEvent nodes.
type AnswerEventUpsertBulk struct {
	create *AnswerEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) UpdateNewValues() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(answerevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(answerevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnswerEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnswerEventUpsertBulk) Ignore() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnswerEventUpsertBulk) DoNothing() *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnswerEventCreateBulk.OnConflict
// documentation for more info.
func (u *AnswerEventUpsertBulk) Update(set func(*AnswerEventUpsert)) *AnswerEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnswerEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionID sets the "session_id" field.
func (u *AnswerEventUpsertBulk) SetSessionID(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateSessionID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateSessionID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *AnswerEventUpsertBulk) SetTopicID(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateTopicID() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTopicID()
	})
}

// SetQuestionText sets the "question_text" field.
func (u *AnswerEventUpsertBulk) SetQuestionText(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetQuestionText(v)
	})
}

// UpdateQuestionText sets the "question_text" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateQuestionText() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateQuestionText()
	})
}

// SetCorrectAnswer sets the "correct_answer" field.
func (u *AnswerEventUpsertBulk) SetCorrectAnswer(v float64) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrectAnswer(v)
	})
}

// AddCorrectAnswer adds v to the "correct_answer" field.
func (u *AnswerEventUpsertBulk) AddCorrectAnswer(v float64) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddCorrectAnswer(v)
	})
}

// UpdateCorrectAnswer sets the "correct_answer" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateCorrectAnswer() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrectAnswer()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *AnswerEventUpsertBulk) SetUserAnswer(v string) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateUserAnswer() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetCorrect sets the "correct" field.
func (u *AnswerEventUpsertBulk) SetCorrect(v bool) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateCorrect() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetToleranceBand sets the "tolerance_band" field.
func (u *AnswerEventUpsertBulk) SetToleranceBand(v bool) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetToleranceBand(v)
	})
}

// UpdateToleranceBand sets the "tolerance_band" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateToleranceBand() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateToleranceBand()
	})
}

// SetGenerated sets the "generated" field.
func (u *AnswerEventUpsertBulk) SetGenerated(v bool) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetGenerated(v)
	})
}

// UpdateGenerated sets the "generated" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateGenerated() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateGenerated()
	})
}

// SetTimeSecs sets the "time_secs" field.
func (u *AnswerEventUpsertBulk) SetTimeSecs(v int) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.SetTimeSecs(v)
	})
}

// AddTimeSecs adds v to the "time_secs" field.
func (u *AnswerEventUpsertBulk) AddTimeSecs(v int) *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.AddTimeSecs(v)
	})
}

// UpdateTimeSecs sets the "time_secs" field to the value that was provided on create.
func (u *AnswerEventUpsertBulk) UpdateTimeSecs() *AnswerEventUpsertBulk {
	return u.Update(func(s *AnswerEventUpsert) {
		s.UpdateTimeSecs()
	})
}

// Exec executes the query.
func (u *AnswerEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnswerEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnswerEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnswerEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
