package ui

import (
	"net/http"
	"strings"

	"transitdash/domain/selection"
	"transitdash/internal/profiling"

	"github.com/gin-gonic/gin"
)

// handleDashboard renders the single dashboard page with its controls
// pre-populated from the loaded datasets.
func (s *Server) handleDashboard(c *gin.Context) {
	defaults := selection.Default()
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":        "Urban Transportation Insights Dashboard",
		"Datasets":     selection.HeatmapDatasets,
		"ColorScales":  selection.ColorScales,
		"VehicleTypes": s.views.VehicleTypeOptions(),
		"Columns":      s.views.ColumnOptions(defaults.Dataset),
		"Defaults":     defaults,
		"About":        s.aboutHTML,
	})
}

// handleDatasets returns per-dataset profiling summaries.
func (s *Server) handleDatasets(c *gin.Context) {
	keys := append([]selection.DatasetKey{}, selection.HeatmapDatasets...)
	keys = append(keys, selection.DatasetJourney)

	summaries := make([]profiling.DatasetSummary, 0, len(keys))
	for _, key := range keys {
		summaries = append(summaries, profiling.Summarize(s.store.Table(key)))
	}
	c.JSON(http.StatusOK, gin.H{
		"datasets": summaries,
		"reports":  s.store.Reports(),
	})
}

func (s *Server) handleColumnOptions(c *gin.Context) {
	key, err := selection.ParseDatasetKey(c.Query("dataset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"columns": s.views.ColumnOptions(key)})
}

func (s *Server) handleVehicleTypeOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vehicle_types": s.views.VehicleTypeOptions()})
}

func (s *Server) handleHeatmap(c *gin.Context) {
	key, err := selection.ParseDatasetKey(c.Query("dataset"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scale, err := selection.ParseColorScale(c.Query("scale"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.views.CorrelationHeatmap(key, queryColumns(c), scale))
}

func (s *Server) handleTransport(c *gin.Context) {
	c.JSON(http.StatusOK, s.views.TransportTimeSeries())
}

func (s *Server) handleVehicles(c *gin.Context) {
	vehicleType := c.Query("type")
	if vehicleType == "" {
		vehicleType = selection.VehicleTypeAll
	}
	c.JSON(http.StatusOK, s.views.VehicleRegistrations(vehicleType))
}

func (s *Server) handleBikeMap(c *gin.Context) {
	c.JSON(http.StatusOK, s.views.BikeInfrastructureMap())
}

func (s *Server) handleCommute(c *gin.Context) {
	c.JSON(http.StatusOK, s.views.CommuteByStartHour())
}

// queryColumns reads the multi-select column parameter, accepting both
// repeated ?columns= values and a single comma-separated list.
func queryColumns(c *gin.Context) []string {
	var columns []string
	for _, raw := range c.QueryArray("columns") {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				columns = append(columns, part)
			}
		}
	}
	return columns
}
