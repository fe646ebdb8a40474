package store

import (
	"context"
	"fmt"

	"github.com/karthikv/numbersense/ent"
	"github.com/karthikv/numbersense/ent/record"
)

// kvRepo implements KV using the ent Record entity.
type kvRepo struct {
	client *ent.Client
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	rec, err := r.client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get record %q: %w", key, err)
	}
	return rec.Value, true, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	err := r.client.Record.Create().
		SetKey(key).
		SetValue(value).
		OnConflictColumns(record.FieldKey).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set record %q: %w", key, err)
	}
	return nil
}
