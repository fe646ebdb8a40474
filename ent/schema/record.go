package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Record is a durable key-value row. The progress ledger and the settings
// store each persist their full state as a JSON value under a well-known key
// ("numbersense-progress", "numbersense-settings").
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Namespaced storage key"),
		field.Text("value").
			Comment("JSON-serialized payload"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (Record) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key"),
	}
}
