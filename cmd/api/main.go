// Command api serves the dashboard's chart and option endpoints as a
// headless JSON API, for consumers that bring their own presentation.
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"transitdash/app"
	"transitdash/domain/selection"
	"transitdash/internal/config"
	"transitdash/internal/profiling"
	"transitdash/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	datasets, err := store.Load(context.Background(), store.Sources(appConfig.Paths))
	if err != nil {
		log.Fatalf("Failed to load datasets: %v", err)
	}

	router := newRouter(datasets)
	log.Printf("[API] listening on :%s", appConfig.Server.Port)
	if err := http.ListenAndServe(":"+appConfig.Server.Port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func newRouter(datasets *store.Store) *chi.Mux {
	views := app.NewViews(datasets)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/datasets", func(w http.ResponseWriter, req *http.Request) {
			keys := append([]selection.DatasetKey{}, selection.HeatmapDatasets...)
			keys = append(keys, selection.DatasetJourney)
			summaries := make([]profiling.DatasetSummary, 0, len(keys))
			for _, key := range keys {
				summaries = append(summaries, profiling.Summarize(datasets.Table(key)))
			}
			writeJSON(w, map[string]interface{}{
				"datasets": summaries,
				"reports":  datasets.Reports(),
			})
		})

		r.Get("/options/columns", func(w http.ResponseWriter, req *http.Request) {
			key, err := selection.ParseDatasetKey(req.URL.Query().Get("dataset"))
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			writeJSON(w, map[string]interface{}{"columns": views.ColumnOptions(key)})
		})

		r.Get("/options/vehicle-types", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, map[string]interface{}{"vehicle_types": views.VehicleTypeOptions()})
		})

		r.Route("/charts", func(r chi.Router) {
			r.Get("/heatmap", func(w http.ResponseWriter, req *http.Request) {
				q := req.URL.Query()
				key, err := selection.ParseDatasetKey(q.Get("dataset"))
				if err != nil {
					writeError(w, http.StatusBadRequest, err)
					return
				}
				scale, err := selection.ParseColorScale(q.Get("scale"))
				if err != nil {
					writeError(w, http.StatusBadRequest, err)
					return
				}
				writeJSON(w, views.CorrelationHeatmap(key, splitColumns(q.Get("columns")), scale))
			})
			r.Get("/transport", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, views.TransportTimeSeries())
			})
			r.Get("/vehicles", func(w http.ResponseWriter, req *http.Request) {
				vehicleType := req.URL.Query().Get("type")
				if vehicleType == "" {
					vehicleType = selection.VehicleTypeAll
				}
				writeJSON(w, views.VehicleRegistrations(vehicleType))
			})
			r.Get("/bike-map", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, views.BikeInfrastructureMap())
			})
			r.Get("/commute", func(w http.ResponseWriter, req *http.Request) {
				writeJSON(w, views.CommuteByStartHour())
			})
		})
	})

	return r
}

func splitColumns(raw string) []string {
	var columns []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			columns = append(columns, part)
		}
	}
	return columns
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
