package db

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"upc-extension/vinculacion/internal/metrics"
	"upc-extension/vinculacion/internal/models/entities"
)

// One registry per test binary; Prometheus rejects duplicate registration.
var testRegistry = metrics.NewMetricsRegistry()

func TestInstrumentRecordsQueries(t *testing.T) {
	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := Migrate(orm); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := Instrument(orm, testRegistry); err != nil {
		t.Fatalf("Instrument failed: %v", err)
	}

	creates := testutil.ToFloat64(testRegistry.DBQueriesTotal.WithLabelValues("create"))
	queries := testutil.ToFloat64(testRegistry.DBQueriesTotal.WithLabelValues("query"))

	proyecto := entities.Proyecto{Titulo: "Huertas", AreaTematica: "ambiental"}
	if err := orm.Create(&proyecto).Error; err != nil {
		t.Fatalf("create failed: %v", err)
	}
	var out []entities.Proyecto
	if err := orm.Find(&out).Error; err != nil {
		t.Fatalf("find failed: %v", err)
	}

	if got := testutil.ToFloat64(testRegistry.DBQueriesTotal.WithLabelValues("create")); got != creates+1 {
		t.Fatalf("expected create counter to advance by 1, got %v -> %v", creates, got)
	}
	if got := testutil.ToFloat64(testRegistry.DBQueriesTotal.WithLabelValues("query")); got != queries+1 {
		t.Fatalf("expected query counter to advance by 1, got %v -> %v", queries, got)
	}
}
