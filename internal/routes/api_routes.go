package routes

import (
	"github.com/go-chi/chi/v5"

	"upc-extension/vinculacion/internal/api"
)

// mountEntity registers the uniform surface of one entity type. extra adds
// the entity's filter routes, when it has any.
func mountEntity[T any, C api.CreatePayload[T], U api.UpdatePayload](r chi.Router, path string, h *api.EntityHandlers[T, C, U], extra func(chi.Router)) {
	r.Route("/"+path, func(r chi.Router) {
		r.Post("/upload", h.Upload)
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		if extra != nil {
			extra(r)
		}
	})
}

func registerEntityRoutes(r chi.Router, deps *api.Dependencies) {
	mountEntity(r, "empresas", deps.Empresas, nil)

	mountEntity(r, "egresados", deps.Egresados, func(r chi.Router) {
		r.Get("/empleabilidad/{valor}", deps.Egresados.FilterBy("empleabilidad"))
	})

	mountEntity(r, "convenios", deps.Convenios, func(r chi.Router) {
		r.Get("/estatus/{valor}", deps.Convenios.FilterBy("estatus"))
		r.Get("/compania/{valor}", deps.Convenios.FilterByID("compania_id"))
	})

	mountEntity(r, "eventos", deps.Eventos, nil)
	mountEntity(r, "proyectos", deps.Proyectos, nil)
	mountEntity(r, "impacto_social", deps.ImpactoSocial, func(r chi.Router) {
		r.Get("/estado/{valor}", deps.ImpactoSocial.FilterBy("estado"))
	})

	mountEntity(r, "publicaciones", deps.Publicaciones, func(r chi.Router) {
		r.Get("/area/{valor}", deps.Publicaciones.FilterBy("area"))
		r.Get("/tipo/{valor}", deps.Publicaciones.FilterBy("tipo"))
	})

	mountEntity(r, "relaciones_internacionales", deps.Relaciones, func(r chi.Router) {
		r.Get("/tipo/{valor}", deps.Relaciones.FilterBy("tipo"))
		r.Get("/estado/{valor}", deps.Relaciones.FilterBy("estado"))
		r.Get("/pais/{valor}", deps.Relaciones.FilterBy("pais"))
	})

	mountEntity(r, "salidas_practicas", deps.Salidas, nil)

	mountEntity(r, "estadisticas", deps.Estadisticas, func(r chi.Router) {
		r.Get("/categoria/{valor}", deps.Estadisticas.FilterBy("categoria"))
	})
}
