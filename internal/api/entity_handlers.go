package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/metrics"
	"upc-extension/vinculacion/internal/models/dtos/requests"
	"upc-extension/vinculacion/internal/models/dtos/responses"
	"upc-extension/vinculacion/internal/services"
)

const maxUploadBytes = 32 << 20

// CreatePayload is a create request body: validated fields convertible to the
// entity model plus its natural-key values for the conflict check.
type CreatePayload[T any] interface {
	Model() T
	KeyValues() map[string]any
}

// UpdatePayload is a merge-patch body: only the columns present in the JSON
// appear in Changes.
type UpdatePayload interface {
	Changes() map[string]any
}

// EntityHandlers serves the uniform HTTP surface of one entity type: bulk
// upload, create, list, get, update, delete and the filter routes.
type EntityHandlers[T any, C CreatePayload[T], U UpdatePayload] struct {
	svc *services.EntityService[T]
	reg *metrics.MetricsRegistry
}

func NewEntityHandlers[T any, C CreatePayload[T], U UpdatePayload](svc *services.EntityService[T], reg *metrics.MetricsRegistry) *EntityHandlers[T, C, U] {
	return &EntityHandlers[T, C, U]{svc: svc, reg: reg}
}

// Upload receives a multipart "file" field and runs it through the ingestion
// pipeline. Only .csv uploads are accepted over HTTP; a problem-bearing
// outcome is still a 200.
func (h *EntityHandlers[T, C, U]) Upload(w http.ResponseWriter, r *http.Request) {
	entity := h.svc.Entity()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondDetail(w, http.StatusBadRequest, "No se pudo leer el archivo enviado")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Falta el archivo en el campo 'file'")
		return
	}
	defer func() { _ = file.Close() }()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".csv" {
		h.reg.UploadsTotal.WithLabelValues(entity, "rejected").Inc()
		respondDetail(w, http.StatusBadRequest, "Solo se permiten archivos CSV")
		return
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "No se pudo leer el archivo enviado")
		return
	}

	start := time.Now()
	resumen, err := h.svc.Ingerir(r.Context(), header.Filename, payload)
	h.reg.UploadRowsDuration.WithLabelValues(entity).Observe(time.Since(start).Seconds())

	if err != nil {
		var archivo *ingest.ErrorArchivo
		if errors.As(err, &archivo) {
			h.reg.UploadsTotal.WithLabelValues(entity, "rejected").Inc()
			respondDetail(w, http.StatusBadRequest, archivo.Motivo)
			return
		}
		h.reg.UploadsTotal.WithLabelValues(entity, "failed").Inc()
		respondDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.reg.UploadsTotal.WithLabelValues(entity, "ok").Inc()
	h.reg.RowsIngestedTotal.WithLabelValues(entity).Add(float64(resumen.RegistrosValidos))
	h.reg.RowsRejectedTotal.WithLabelValues(entity, "duplicado_csv").Add(float64(resumen.DuplicadosCSV))
	h.reg.RowsRejectedTotal.WithLabelValues(entity, "duplicado_bd").Add(float64(resumen.DuplicadosBD))
	h.reg.RowsRejectedTotal.WithLabelValues(entity, "formato").Add(float64(resumen.ErroresFormato))

	respondJSON(w, http.StatusOK, resumen)
}

// Create inserts a single record, rejecting natural-key conflicts with 400.
func (h *EntityHandlers[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var body C
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	if err := requests.Validate.Struct(body); err != nil {
		respondDetail(w, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	model := body.Model()
	if err := h.svc.Crear(r.Context(), &model, body.KeyValues()); err != nil {
		var conflicto *services.ErrorConflicto
		if errors.As(err, &conflicto) {
			respondDetail(w, http.StatusBadRequest, conflicto.Mensaje)
			return
		}
		respondDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, model)
}

// List returns every stored record as a JSON array.
func (h *EntityHandlers[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Listar(r.Context())
	if err != nil {
		respondDetail(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, records)
}

// Get returns one record by id.
func (h *EntityHandlers[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	model, err := h.svc.Obtener(r.Context(), id)
	if err != nil {
		h.respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, model)
}

// Update merge-patches one record and returns the refreshed row.
func (h *EntityHandlers[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var body U
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondDetail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}
	model, err := h.svc.Actualizar(r.Context(), id, body.Changes())
	if err != nil {
		h.respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, model)
}

// Delete removes one record and confirms with the entity's detail message.
func (h *EntityHandlers[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(r.Context(), id); err != nil {
		h.respondLookupError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, responses.Detail{Detail: h.svc.MensajeEliminado()})
}

// FilterBy serves the secondary lookup routes, matching the canonical field
// against the {valor} path segment.
func (h *EntityHandlers[T, C, U]) FilterBy(field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := chi.URLParam(r, "valor")
		records, err := h.svc.Filtrar(r.Context(), field, value)
		if err != nil {
			respondDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// FilterByID is FilterBy for integer-valued fields (convenios by compania).
func (h *EntityHandlers[T, C, U]) FilterByID(field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := strconv.ParseInt(chi.URLParam(r, "valor"), 10, 64)
		if err != nil {
			respondDetail(w, http.StatusBadRequest, "El identificador debe ser un entero")
			return
		}
		records, err := h.svc.Filtrar(r.Context(), field, value)
		if err != nil {
			respondDetail(w, http.StatusInternalServerError, err.Error())
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

func (h *EntityHandlers[T, C, U]) respondLookupError(w http.ResponseWriter, err error) {
	var noEncontrado *services.ErrorNoEncontrado
	if errors.As(err, &noEncontrado) {
		respondDetail(w, http.StatusNotFound, noEncontrado.Mensaje)
		return
	}
	respondDetail(w, http.StatusInternalServerError, err.Error())
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "El id debe ser un entero positivo")
		return 0, false
	}
	return uint(id), true
}
