package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mariuschr/vinlookup-open/internal/constants"
	"github.com/mariuschr/vinlookup-open/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(db *sqlx.DB, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		services := make(map[string]entities.ServiceStatus)

		// Check postgres
		pgstatus := constants.APIStatusOk
		pgDetails := "Postgres Connected"
		if err := db.Ping(); err != nil {
			pgstatus = constants.APIStatusDown
			pgDetails = err.Error()
		}
		services["postgres"] = entities.ServiceStatus{
			Status:  string(pgstatus),
			Details: pgDetails,
		}

		overallStatus := constants.APIStatusOk
		for _, svc := range services {
			if svc.Status != string(constants.APIStatusOk) {
				overallStatus = constants.APIStatusDown
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := entities.HealthCheckResponse{
			Services: services,
			Status:   string(overallStatus),
			Uptime:   uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
