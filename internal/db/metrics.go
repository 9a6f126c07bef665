package db

import (
	"time"

	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/metrics"
)

const queryStartKey = "vinculacion:query_start"

// Instrument registers GORM callbacks that record query counts and latency
// per operation type. Call once per connection, before serving.
func Instrument(orm *gorm.DB, reg *metrics.MetricsRegistry) error {
	before := func(tx *gorm.DB) {
		tx.InstanceSet(queryStartKey, time.Now())
	}
	after := func(op string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			reg.DBQueriesTotal.WithLabelValues(op).Inc()
			if v, ok := tx.InstanceGet(queryStartKey); ok {
				if start, ok := v.(time.Time); ok {
					reg.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
				}
			}
		}
	}

	cb := orm.Callback()
	if err := cb.Create().Before("gorm:create").Register("vinculacion:metrics_before_create", before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("vinculacion:metrics_after_create", after("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("vinculacion:metrics_before_query", before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("vinculacion:metrics_after_query", after("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("vinculacion:metrics_before_update", before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("vinculacion:metrics_after_update", after("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("vinculacion:metrics_before_delete", before); err != nil {
		return err
	}
	return cb.Delete().After("gorm:delete").Register("vinculacion:metrics_after_delete", after("delete"))
}
