package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"upc-extension/vinculacion/internal/db"
	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	orm, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return orm
}

func TestEmpresaCrearYConflicto(t *testing.T) {
	svc := NewEmpresaService(testDB(t))
	ctx := context.Background()

	empresa := entities.Empresa{
		NombreEmpresa: "Acme",
		NIT:           "900123456",
		Sector:        "Tecnología",
		FechaConvenio: mustFecha(t, "2024-01-15"),
	}
	keys := map[string]any{"nit": empresa.NIT, "nombre_empresa": empresa.NombreEmpresa}

	if err := svc.Crear(ctx, &empresa, keys); err != nil {
		t.Fatalf("Crear failed: %v", err)
	}
	if empresa.EmpresaID == 0 {
		t.Fatal("expected assigned id after create")
	}

	// Same NIT under another name still conflicts.
	repetida := entities.Empresa{
		NombreEmpresa: "Acme Dos",
		NIT:           "900123456",
		Sector:        "Salud",
		FechaConvenio: mustFecha(t, "2024-02-01"),
	}
	err := svc.Crear(ctx, &repetida, map[string]any{"nit": repetida.NIT, "nombre_empresa": repetida.NombreEmpresa})
	var conflicto *ErrorConflicto
	if !errors.As(err, &conflicto) {
		t.Fatalf("expected ErrorConflicto, got %v", err)
	}
	if conflicto.Mensaje != "Ya existe una empresa con este NIT" {
		t.Fatalf("unexpected conflict message: %s", conflicto.Mensaje)
	}

	// Different NIT and name is fine even when the sector repeats.
	otra := entities.Empresa{
		NombreEmpresa: "Beta",
		NIT:           "900654321",
		Sector:        "Tecnología",
		FechaConvenio: mustFecha(t, "2024-03-01"),
	}
	if err := svc.Crear(ctx, &otra, map[string]any{"nit": otra.NIT, "nombre_empresa": otra.NombreEmpresa}); err != nil {
		t.Fatalf("Crear failed for distinct company: %v", err)
	}
}

func TestEmpresaCrudLifecycle(t *testing.T) {
	svc := NewEmpresaService(testDB(t))
	ctx := context.Background()

	empresa := entities.Empresa{
		NombreEmpresa: "Acme",
		NIT:           "900123456",
		Sector:        "Tecnología",
		FechaConvenio: mustFecha(t, "2024-01-15"),
	}
	if err := svc.Crear(ctx, &empresa, map[string]any{"nit": empresa.NIT, "nombre_empresa": empresa.NombreEmpresa}); err != nil {
		t.Fatalf("Crear failed: %v", err)
	}

	got, err := svc.Obtener(ctx, empresa.EmpresaID)
	if err != nil {
		t.Fatalf("Obtener failed: %v", err)
	}
	if got.NombreEmpresa != "Acme" {
		t.Fatalf("unexpected record: %+v", got)
	}

	updated, err := svc.Actualizar(ctx, empresa.EmpresaID, map[string]any{"sector": "Energía"})
	if err != nil {
		t.Fatalf("Actualizar failed: %v", err)
	}
	if updated.Sector != "Energía" {
		t.Fatalf("sector not updated: %+v", updated)
	}
	if updated.NIT != "900123456" {
		t.Fatalf("untouched field changed: %+v", updated)
	}

	list, err := svc.Listar(ctx)
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}

	if err := svc.Eliminar(ctx, empresa.EmpresaID); err != nil {
		t.Fatalf("Eliminar failed: %v", err)
	}

	var noEncontrado *ErrorNoEncontrado
	if _, err := svc.Obtener(ctx, empresa.EmpresaID); !errors.As(err, &noEncontrado) {
		t.Fatalf("expected ErrorNoEncontrado after delete, got %v", err)
	}
	if err := svc.Eliminar(ctx, empresa.EmpresaID); !errors.As(err, &noEncontrado) {
		t.Fatalf("expected ErrorNoEncontrado on second delete, got %v", err)
	}
	if _, err := svc.Actualizar(ctx, 9999, map[string]any{"sector": "X"}); !errors.As(err, &noEncontrado) {
		t.Fatalf("expected ErrorNoEncontrado on update, got %v", err)
	}
}

func TestEmpresaIngerir(t *testing.T) {
	svc := NewEmpresaService(testDB(t))
	ctx := context.Background()

	csv := "nombre_empresa,nit,sector,fecha_convenio\n" +
		"Acme,900.1,Tecnología,2024-01-15\n" +
		"Acme,900.1,Tecnología,2024-01-15\n" +
		"Beta,900.2,Salud,2024-02-01\n"

	resumen, err := svc.Ingerir(ctx, "empresas.csv", []byte(csv))
	if err != nil {
		t.Fatalf("Ingerir failed: %v", err)
	}
	if resumen.RegistrosValidos != 2 || resumen.DuplicadosCSV != 1 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}

	// The stored duplicate check matches on nit OR name.
	csv2 := "nombre_empresa,nit,sector,fecha_convenio\n" +
		"Acme Renombrada,900.1,Tecnología,2024-01-15\n" +
		"Beta,999.9,Salud,2024-02-01\n" +
		"Nueva,900.5,Educación,2024-04-01\n"

	resumen2, err := svc.Ingerir(ctx, "empresas.csv", []byte(csv2))
	if err != nil {
		t.Fatalf("second Ingerir failed: %v", err)
	}
	if resumen2.DuplicadosBD != 2 {
		t.Fatalf("expected 2 stored duplicates, got %+v", resumen2)
	}
	if resumen2.RegistrosValidos != 1 {
		t.Fatalf("expected 1 inserted, got %+v", resumen2)
	}

	list, err := svc.Listar(ctx)
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 stored companies, got %d", len(list))
	}
}

func TestEgresadoIngerirFuzzyHeaders(t *testing.T) {
	svc := NewEgresadoService(testDB(t))
	ctx := context.Background()

	csv := "Nombre Completo,Año de Graduación,empleo,CORREO\n" +
		"Ana Pérez,2020-12-01,Empleado,ana@upc.edu\n" +
		"Luis Díaz,2021-06-15,desconocido,luis@upc.edu\n"

	resumen, err := svc.Ingerir(ctx, "egresados.csv", []byte(csv))
	if err != nil {
		t.Fatalf("Ingerir failed: %v", err)
	}
	if resumen.RegistrosValidos != 2 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}

	// Unknown employability folded to the fallback.
	filtrados, err := svc.Filtrar(ctx, "empleabilidad", entities.EmpleabilidadDesempleado)
	if err != nil {
		t.Fatalf("Filtrar failed: %v", err)
	}
	if len(filtrados) != 1 || filtrados[0].NombreCompleto != "Luis Díaz" {
		t.Fatalf("unexpected filter result: %+v", filtrados)
	}

	// A known email under a new name is still a duplicate (ANY mode).
	csv2 := "nombre_completo,año_graduacion,empleabilidad,email\n" +
		"Ana P. de Casada,2020-12-01,Empleado,ana@upc.edu\n"
	resumen2, err := svc.Ingerir(ctx, "egresados.csv", []byte(csv2))
	if err != nil {
		t.Fatalf("second Ingerir failed: %v", err)
	}
	if resumen2.DuplicadosBD != 1 || resumen2.RegistrosValidos != 0 {
		t.Fatalf("expected stored duplicate by email, got %+v", resumen2)
	}
}

func TestConvenioFiltrar(t *testing.T) {
	svc := NewConvenioService(testDB(t))
	ctx := context.Background()

	csv := "compania_id,titulo_compania,tipo_de_convenio,descripcion,beneficios,fecha_firma,fecha_vencimiento,estatus\n" +
		"1,Acme,marco,desc,becas,2024-01-01,2025-01-01,active\n" +
		"1,Acme practicas,especifico,desc,practicas,2024-02-01,2025-02-01,\n" +
		"2,Beta,marco,desc,becas,2024-03-01,2025-03-01,expired\n"

	resumen, err := svc.Ingerir(ctx, "convenios.csv", []byte(csv))
	if err != nil {
		t.Fatalf("Ingerir failed: %v", err)
	}
	if resumen.RegistrosValidos != 3 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}

	// Empty estatus defaulted to pending.
	pendientes, err := svc.Filtrar(ctx, "estatus", entities.EstatusConvenioPendiente)
	if err != nil {
		t.Fatalf("Filtrar estatus failed: %v", err)
	}
	if len(pendientes) != 1 || pendientes[0].TituloCompania != "Acme practicas" {
		t.Fatalf("unexpected pending agreements: %+v", pendientes)
	}

	porCompania, err := svc.Filtrar(ctx, "compania_id", int64(1))
	if err != nil {
		t.Fatalf("Filtrar compania failed: %v", err)
	}
	if len(porCompania) != 2 {
		t.Fatalf("expected 2 agreements for company 1, got %d", len(porCompania))
	}
}

func TestConvenioIngerirReferenciaRota(t *testing.T) {
	// Foreign keys are off by default in sqlite; the production schema
	// enforces convenios.compania_id -> empresas.empresa_id.
	orm, err := gorm.Open(sqlite.Open("file::memory:?_fk=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.Migrate(orm); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	ctx := context.Background()

	empresa := entities.Empresa{
		NombreEmpresa: "Acme",
		NIT:           "900123456",
		Sector:        "Tecnología",
		FechaConvenio: mustFecha(t, "2024-01-15"),
	}
	if err := NewEmpresaService(orm).Crear(ctx, &empresa, map[string]any{"nit": empresa.NIT, "nombre_empresa": empresa.NombreEmpresa}); err != nil {
		t.Fatalf("Crear empresa failed: %v", err)
	}

	svc := NewConvenioService(orm)
	csv := fmt.Sprintf("compania_id,titulo_compania,tipo_de_convenio,descripcion,beneficios,fecha_firma,fecha_vencimiento,estatus\n"+
		"%d,Acme,marco,desc,becas,2024-01-01,2025-01-01,active\n"+
		"999,Fantasma,marco,desc,becas,2024-01-01,2025-01-01,active\n", empresa.EmpresaID)

	_, err = svc.Ingerir(ctx, "convenios.csv", []byte(csv))
	var almacen *ingest.ErrorAlmacen
	if !errors.As(err, &almacen) {
		t.Fatalf("expected ErrorAlmacen for broken company reference, got %v", err)
	}

	// The whole batch rolled back, including the valid row.
	list, err := svc.Listar(ctx)
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected rollback to leave no agreements, got %d", len(list))
	}
}

func TestSalidaIngerirHoras(t *testing.T) {
	svc := NewSalidaService(testDB(t))
	ctx := context.Background()

	csv := "fecha_salida,lugar_destino,responsable,cantidad_estudiantes,hora_salida,hora_regreso,observaciones\n" +
		"2024-05-10,Museo del Oro,Prof. Gómez,32,07:30,17:00,\n" +
		"2024-05-10,Museo del Oro,Prof. Gómez,32,07:30,17:00,repetida\n" +
		"2024-05-10,Museo del Oro,Prof. Gómez,32,25:99,17:00,\n"

	resumen, err := svc.Ingerir(ctx, "salidas.csv", []byte(csv))
	if err != nil {
		t.Fatalf("Ingerir failed: %v", err)
	}
	if resumen.RegistrosValidos != 1 || resumen.DuplicadosCSV != 1 || resumen.ErroresFormato != 1 {
		t.Fatalf("unexpected outcome: %+v", resumen)
	}

	list, err := svc.Listar(ctx)
	if err != nil {
		t.Fatalf("Listar failed: %v", err)
	}
	if len(list) != 1 || list[0].HoraSalida != entities.Hora("07:30") {
		t.Fatalf("unexpected stored trip: %+v", list)
	}
	if list[0].Observaciones != "" {
		t.Fatalf("expected empty observaciones, got %q", list[0].Observaciones)
	}
}

func mustFecha(t *testing.T, s string) entities.Fecha {
	t.Helper()
	f, err := entities.ParseFecha(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return f
}
