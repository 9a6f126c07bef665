package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
)

// Repository is the GORM-backed store for one entity type. It implements
// ingest.Sink for the bulk pipeline and backs the CRUD service. Every call
// runs against the request's context; sessions are never shared across
// requests.
type Repository[T any] struct {
	db       *gorm.DB
	desc     *ingest.Descriptor
	build    func(ingest.Record) T
	idColumn string
}

// NewRepository wires a repository for a descriptor. build converts a
// normalized record into the entity model for bulk inserts.
func NewRepository[T any](db *gorm.DB, desc *ingest.Descriptor, idColumn string, build func(ingest.Record) T) *Repository[T] {
	return &Repository[T]{db: db, desc: desc, build: build, idColumn: idColumn}
}

// keyCondition renders a KeySpec into a WHERE clause over the descriptor's
// columns: conjunction for MatchAll, disjunction for MatchAny.
func (r *Repository[T]) keyCondition(values map[string]any, key ingest.KeySpec) (string, []any) {
	conds := make([]string, 0, len(key.Fields))
	args := make([]any, 0, len(key.Fields))
	for _, f := range key.Fields {
		conds = append(conds, r.desc.Column(f)+" = ?")
		args = append(args, values[f])
	}
	sep := " AND "
	if key.Mode == ingest.MatchAny {
		sep = " OR "
	}
	return strings.Join(conds, sep), args
}

// FindByKey looks up an existing record by natural key and returns its id.
func (r *Repository[T]) FindByKey(ctx context.Context, rec ingest.Record, key ingest.KeySpec) (uint, bool, error) {
	cond, args := r.keyCondition(rec, key)

	var ids []uint
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where(cond, args...).
		Limit(1).
		Pluck(r.idColumn, &ids).Error
	if err != nil {
		return 0, false, fmt.Errorf("failed to check natural key for %s: %w", r.desc.Entity, err)
	}
	if len(ids) == 0 {
		return 0, false, nil
	}
	return ids[0], true, nil
}

// InsertBatch persists the surviving rows of one upload in a single
// transaction. A failure (a broken foreign key, for instance) rolls back the
// whole batch.
func (r *Repository[T]) InsertBatch(ctx context.Context, recs []ingest.Record) error {
	models := make([]T, len(recs))
	for i, rec := range recs {
		models[i] = r.build(rec)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("bulk insert of %s failed: %w", r.desc.Entity, err)
		}
		return nil
	})
}

// Create inserts a single record, filling its auto-assigned id.
func (r *Repository[T]) Create(ctx context.Context, model *T) error {
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert %s: %w", r.desc.Entity, err)
	}
	return nil
}

// GetByID fetches one record, returning (nil, nil) when absent.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var model T
	err := r.db.WithContext(ctx).
		Where(r.idColumn+" = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", r.desc.Entity, err)
	}
	return &model, nil
}

// GetAll lists every stored record.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var models []T
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.desc.Entity, err)
	}
	return models, nil
}

// UpdateFields merges the given column values into an existing record and
// returns the refreshed row. Absent fields stay untouched.
func (r *Repository[T]) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).
			Model(new(T)).
			Where(r.idColumn+" = ?", id).
			Updates(fields).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update %s: %w", r.desc.Entity, err)
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes one record, reporting whether it existed.
func (r *Repository[T]) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where(r.idColumn+" = ?", id).
		Delete(new(T))
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete %s: %w", r.desc.Entity, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// FilterBy lists records whose column equals value (the secondary lookup
// routes).
func (r *Repository[T]) FilterBy(ctx context.Context, column string, value any) ([]T, error) {
	var models []T
	err := r.db.WithContext(ctx).
		Where(column+" = ?", value).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s by %s: %w", r.desc.Entity, column, err)
	}
	return models, nil
}
