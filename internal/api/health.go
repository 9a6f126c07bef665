package api

import (
	"net/http"
	"time"

	"upc-extension/vinculacion/internal/db"
	"upc-extension/vinculacion/internal/models/dtos/responses"
	"upc-extension/vinculacion/internal/models/entities"
)

var startTime = time.Now()

// HealthCheckHandler reports database reachability and process uptime.
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	services := make(map[string]entities.ServiceStatus)
	overall := "ok"

	dbStatus := entities.ServiceStatus{Status: "ok", Details: "conexión establecida"}
	if db.DB == nil {
		dbStatus = entities.ServiceStatus{Status: "error", Details: "conexión no inicializada"}
		overall = "degraded"
	} else if err := db.DB.PingContext(r.Context()); err != nil {
		dbStatus = entities.ServiceStatus{Status: "error", Details: err.Error()}
		overall = "degraded"
	}
	services["database"] = dbStatus

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, entities.HealthCheckResponse{
		Status:   overall,
		Uptime:   time.Since(startTime).Round(time.Second).String(),
		Services: services,
	})
}

// WelcomeHandler answers the root route.
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, responses.Welcome{
		Mensaje: "Bienvenido al sistema de vinculación con el sector externo",
	})
}
