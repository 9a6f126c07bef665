package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"upc-extension/vinculacion/internal/api"
	"upc-extension/vinculacion/internal/db"
	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/metrics"
	"upc-extension/vinculacion/internal/middleware"
	"upc-extension/vinculacion/internal/models/entities"
	"upc-extension/vinculacion/internal/routes"
)

// One registry for the whole test binary; Prometheus rejects duplicate
// registration.
var testMetrics = metrics.NewMetricsRegistry()

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	middleware.ConfigureRateLimit(1000, 1000)
	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := db.Instrument(orm, testMetrics); err != nil {
		t.Fatalf("failed to instrument database: %v", err)
	}

	deps := api.NewDependencies(orm, testMetrics)
	srv := httptest.NewServer(routes.NewRouter(deps))
	t.Cleanup(srv.Close)
	return srv
}

func uploadCSV(t *testing.T, srv *httptest.Server, path, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to build multipart body: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write file part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, srv.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload request failed: %v", err)
	}
	return resp
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func TestUploadEmpresas(t *testing.T) {
	srv := testServer(t)

	csv := "nombre_empresa,nit,sector,fecha_convenio\n" +
		"Acme,900123456,Tecnología,2024-01-15\n" +
		"Beta,900654321,Salud,2024-02-01\n" +
		"Acme,900123456,Tecnología,2024-01-15\n" +
		"Gamma,900777777,Educación,fecha-mala\n"

	resp := uploadCSV(t, srv, "/empresas/upload", "empresas.csv", csv)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	resumen := decode[ingest.Resumen](t, resp)

	if resumen.TotalRegistros != 4 || resumen.RegistrosValidos != 2 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}
	if resumen.DuplicadosCSV != 1 || resumen.ErroresFormato != 1 {
		t.Fatalf("unexpected problem counts: %+v", resumen)
	}
	if !strings.Contains(resumen.Mensaje, "2 empresas") {
		t.Fatalf("unexpected message: %s", resumen.Mensaje)
	}

	// Re-upload: everything already stored.
	resp = uploadCSV(t, srv, "/empresas/upload", "empresas.csv", csv)
	resumen = decode[ingest.Resumen](t, resp)
	if resumen.RegistrosValidos != 0 || resumen.DuplicadosBD != 2 {
		t.Fatalf("re-upload should only report duplicates: %+v", resumen)
	}

	list := decode[[]entities.Empresa](t, doJSON(t, http.MethodGet, srv.URL+"/empresas", nil))
	if len(list) != 2 {
		t.Fatalf("expected 2 stored companies, got %d", len(list))
	}
}

func TestUploadRejectsNonCSV(t *testing.T) {
	srv := testServer(t)

	resp := uploadCSV(t, srv, "/eventos/upload", "eventos.xlsx", "whatever")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["detail"] != "Solo se permiten archivos CSV" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}
}

func TestEmpresaCreateConflictAndLifecycle(t *testing.T) {
	srv := testServer(t)

	payload := map[string]any{
		"nombre_empresa": "Acme",
		"nit":            "900123456",
		"sector":         "Tecnología",
		"fecha_convenio": "2024-01-15",
	}

	resp := doJSON(t, http.MethodPost, srv.URL+"/empresas", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decode[entities.Empresa](t, resp)
	if created.EmpresaID == 0 {
		t.Fatal("expected assigned id")
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/empresas", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate nit, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["detail"] != "Ya existe una empresa con este NIT" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}

	url := fmt.Sprintf("%s/empresas/%d", srv.URL, created.EmpresaID)

	got := decode[entities.Empresa](t, doJSON(t, http.MethodGet, url, nil))
	if got.NombreEmpresa != "Acme" {
		t.Fatalf("unexpected record: %+v", got)
	}

	updated := decode[entities.Empresa](t, doJSON(t, http.MethodPut, url, map[string]any{"sector": "Energía"}))
	if updated.Sector != "Energía" || updated.NIT != "900123456" {
		t.Fatalf("unexpected updated record: %+v", updated)
	}

	resp = doJSON(t, http.MethodDelete, url, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", resp.StatusCode)
	}
	detail := decode[map[string]string](t, resp)
	if detail["detail"] != "Empresa eliminada" {
		t.Fatalf("unexpected delete confirmation: %q", detail["detail"])
	}

	resp = doJSON(t, http.MethodDelete, url, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestGetUnknownID(t *testing.T) {
	srv := testServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/proyectos/42", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["detail"] != "Proyecto no encontrado" {
		t.Fatalf("unexpected detail: %q", body["detail"])
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/proyectos/abc", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}

func TestCreateValidation(t *testing.T) {
	srv := testServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/egresados", map[string]any{
		"nombre_completo": "Ana Pérez",
		"año_graduacion":  "2020-12-01",
		"empleabilidad":   "Empleado",
		"email":           "no-es-un-correo",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

func TestFilterRoutes(t *testing.T) {
	srv := testServer(t)

	csv := "nombre,pais,institucion,tipo,fecha_inicio,fecha_finalizacion,descripcion,participantes,resultados,estado\n" +
		"Intercambio A,Chile,U Chile,mobility,2024-01-01,2024-12-31,desc,10,ok,active\n" +
		"Red B,México,UNAM,network,2024-02-01,2024-12-31,desc,5,ok,pending\n"

	resp := uploadCSV(t, srv, "/relaciones_internacionales/upload", "relaciones.csv", csv)
	resumen := decode[ingest.Resumen](t, resp)
	if resumen.RegistrosValidos != 2 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}

	porTipo := decode[[]entities.RelacionInternacional](t,
		doJSON(t, http.MethodGet, srv.URL+"/relaciones_internacionales/tipo/mobility", nil))
	if len(porTipo) != 1 || porTipo[0].Nombre != "Intercambio A" {
		t.Fatalf("unexpected filter by tipo: %+v", porTipo)
	}

	porPais := decode[[]entities.RelacionInternacional](t,
		doJSON(t, http.MethodGet, srv.URL+"/relaciones_internacionales/pais/Chile", nil))
	if len(porPais) != 1 {
		t.Fatalf("unexpected filter by pais: %+v", porPais)
	}

	vacio := decode[[]entities.RelacionInternacional](t,
		doJSON(t, http.MethodGet, srv.URL+"/relaciones_internacionales/estado/expired", nil))
	if len(vacio) != 0 {
		t.Fatalf("expected empty result, got %+v", vacio)
	}
}

func TestHealthAndWelcome(t *testing.T) {
	srv := testServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from welcome, got %d", resp.StatusCode)
	}
	body := decode[map[string]string](t, resp)
	if body["mensaje"] == "" {
		t.Fatal("expected welcome message")
	}
}
