package api

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/metrics"
	"upc-extension/vinculacion/internal/models/dtos/requests"
	"upc-extension/vinculacion/internal/models/entities"
	"upc-extension/vinculacion/internal/services"
)

// Dependencies wires every entity's service and handlers once at startup and
// is handed to the router.
type Dependencies struct {
	Metrics *metrics.MetricsRegistry

	Empresas      *EntityHandlers[entities.Empresa, requests.EmpresaCreate, requests.EmpresaUpdate]
	Egresados     *EntityHandlers[entities.Egresado, requests.EgresadoCreate, requests.EgresadoUpdate]
	Convenios     *EntityHandlers[entities.Convenio, requests.ConvenioCreate, requests.ConvenioUpdate]
	Eventos       *EntityHandlers[entities.Evento, requests.EventoCreate, requests.EventoUpdate]
	Proyectos     *EntityHandlers[entities.Proyecto, requests.ProyectoCreate, requests.ProyectoUpdate]
	ImpactoSocial *EntityHandlers[entities.ImpactoSocial, requests.ImpactoSocialCreate, requests.ImpactoSocialUpdate]
	Publicaciones *EntityHandlers[entities.Publicacion, requests.PublicacionCreate, requests.PublicacionUpdate]
	Relaciones    *EntityHandlers[entities.RelacionInternacional, requests.RelacionCreate, requests.RelacionUpdate]
	Salidas       *EntityHandlers[entities.SalidaPractica, requests.SalidaCreate, requests.SalidaUpdate]
	Estadisticas  *EntityHandlers[entities.Estadistica, requests.EstadisticaCreate, requests.EstadisticaUpdate]
}

// NewDependencies builds the full dependency graph over one ORM connection.
// The registry is passed in so callers can share one per process.
func NewDependencies(orm *gorm.DB, reg *metrics.MetricsRegistry) *Dependencies {
	return &Dependencies{
		Metrics: reg,

		Empresas: NewEntityHandlers[entities.Empresa, requests.EmpresaCreate, requests.EmpresaUpdate](
			services.NewEmpresaService(orm), reg),
		Egresados: NewEntityHandlers[entities.Egresado, requests.EgresadoCreate, requests.EgresadoUpdate](
			services.NewEgresadoService(orm), reg),
		Convenios: NewEntityHandlers[entities.Convenio, requests.ConvenioCreate, requests.ConvenioUpdate](
			services.NewConvenioService(orm), reg),
		Eventos: NewEntityHandlers[entities.Evento, requests.EventoCreate, requests.EventoUpdate](
			services.NewEventoService(orm), reg),
		Proyectos: NewEntityHandlers[entities.Proyecto, requests.ProyectoCreate, requests.ProyectoUpdate](
			services.NewProyectoService(orm), reg),
		ImpactoSocial: NewEntityHandlers[entities.ImpactoSocial, requests.ImpactoSocialCreate, requests.ImpactoSocialUpdate](
			services.NewImpactoSocialService(orm), reg),
		Publicaciones: NewEntityHandlers[entities.Publicacion, requests.PublicacionCreate, requests.PublicacionUpdate](
			services.NewPublicacionService(orm), reg),
		Relaciones: NewEntityHandlers[entities.RelacionInternacional, requests.RelacionCreate, requests.RelacionUpdate](
			services.NewRelacionService(orm), reg),
		Salidas: NewEntityHandlers[entities.SalidaPractica, requests.SalidaCreate, requests.SalidaUpdate](
			services.NewSalidaService(orm), reg),
		Estadisticas: NewEntityHandlers[entities.Estadistica, requests.EstadisticaCreate, requests.EstadisticaUpdate](
			services.NewEstadisticaService(orm), reg),
	}
}
