package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithUploadCarriesScope(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	previous := globalLogger
	globalLogger = zap.New(core).Sugar()
	defer func() { globalLogger = previous }()

	WithUpload("req-123", "empresas", "empresas.csv").
		Infow("bulk upload processed", "inserted", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-123" {
		t.Fatalf("missing request_id scope: %v", fields)
	}
	if fields["entity"] != "empresas" || fields["filename"] != "empresas.csv" {
		t.Fatalf("missing upload scope: %v", fields)
	}
	if fields["inserted"] != int64(2) {
		t.Fatalf("missing call fields: %v", fields)
	}
}
