package services

import (
	"context"

	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/db/repositories"
	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/logging"
	"upc-extension/vinculacion/internal/middleware"
	"upc-extension/vinculacion/internal/models/entities"
)

// Mensajes holds the user-facing Spanish strings of one entity service.
type Mensajes struct {
	Conflicto    string
	NoEncontrado string
	Eliminado    string
}

// EntityService is the application layer for one entity type: bulk ingestion
// through the pipeline engine plus single-record CRUD against the repository.
type EntityService[T any] struct {
	desc   *ingest.Descriptor
	repo   *repositories.Repository[T]
	engine *ingest.Engine
	msgs   Mensajes
}

// NewEntityService wires the repository and ingestion engine for a
// descriptor.
func NewEntityService[T any](db *gorm.DB, desc *ingest.Descriptor, idColumn string, build func(ingest.Record) T, msgs Mensajes) *EntityService[T] {
	repo := repositories.NewRepository(db, desc, idColumn, build)
	return &EntityService[T]{
		desc:   desc,
		repo:   repo,
		engine: ingest.NewEngine(desc, repo),
		msgs:   msgs,
	}
}

// Entity returns the route segment this service answers for.
func (s *EntityService[T]) Entity() string { return s.desc.Entity }

// MensajeEliminado is the confirmation string for a successful delete.
func (s *EntityService[T]) MensajeEliminado() string { return s.msgs.Eliminado }

// Ingerir runs one uploaded file through the full pipeline and reports the
// outcome. Errors are *ingest.ErrorArchivo or *ingest.ErrorAlmacen.
func (s *EntityService[T]) Ingerir(ctx context.Context, filename string, payload []byte) (*ingest.Resumen, error) {
	log := logging.WithUpload(middleware.RequestIDFrom(ctx), s.desc.Entity, filename)

	resumen, err := s.engine.Ingest(ctx, filename, payload)
	if err != nil {
		log.Warnw("bulk upload failed", "error", err)
		return nil, err
	}
	log.Infow("bulk upload processed",
		"inserted", resumen.RegistrosValidos,
		"problems", resumen.TotalProblemas)
	return resumen, nil
}

// Crear inserts one record after checking the create-key conflict rule.
// keyValues carries the natural-key field values of the incoming record.
func (s *EntityService[T]) Crear(ctx context.Context, model *T, keyValues map[string]any) error {
	_, found, err := s.repo.FindByKey(ctx, ingest.Record(keyValues), s.desc.CreateKey)
	if err != nil {
		return err
	}
	if found {
		return &ErrorConflicto{Mensaje: s.msgs.Conflicto}
	}
	return s.repo.Create(ctx, model)
}

// Listar returns every stored record.
func (s *EntityService[T]) Listar(ctx context.Context) ([]T, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Obtener fetches one record by id.
func (s *EntityService[T]) Obtener(ctx context.Context, id uint) (*T, error) {
	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if model == nil {
		return nil, &ErrorNoEncontrado{Mensaje: s.msgs.NoEncontrado}
	}
	return model, nil
}

// Actualizar merges the provided column values into an existing record.
// Natural-key uniqueness is not re-checked on update.
func (s *EntityService[T]) Actualizar(ctx context.Context, id uint, cambios map[string]any) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &ErrorNoEncontrado{Mensaje: s.msgs.NoEncontrado}
	}
	return s.repo.UpdateFields(ctx, id, cambios)
}

// Eliminar removes one record by id.
func (s *EntityService[T]) Eliminar(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return &ErrorNoEncontrado{Mensaje: s.msgs.NoEncontrado}
	}
	return nil
}

// Filtrar lists records whose canonical field equals value.
func (s *EntityService[T]) Filtrar(ctx context.Context, field string, value any) ([]T, error) {
	records, err := s.repo.FilterBy(ctx, s.desc.Column(field), value)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Record value accessors used by the per-entity model builders. A missing or
// mistyped value yields the zero value; normalization guarantees required
// fields are present and typed.

func recStr(rec ingest.Record, field string) string {
	v, _ := rec[field].(string)
	return v
}

func recInt(rec ingest.Record, field string) int64 {
	v, _ := rec[field].(int64)
	return v
}

func recFecha(rec ingest.Record, field string) entities.Fecha {
	v, _ := rec[field].(entities.Fecha)
	return v
}

func recHora(rec ingest.Record, field string) entities.Hora {
	v, _ := rec[field].(entities.Hora)
	return v
}
