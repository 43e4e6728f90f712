package handlers

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/darkred-portfolio/backend/internal/models"
	"github.com/darkred-portfolio/backend/internal/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var startTime = time.Now()

// Metrics returns a handler writing Prometheus text format gauges.
// GET /metrics
func Metrics(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var b strings.Builder

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		writeGauge(&b, "portfolio_uptime_seconds", "Time since server start in seconds", time.Since(startTime).Seconds())
		writeGauge(&b, "portfolio_goroutines", "Number of active goroutines", float64(runtime.NumGoroutine()))
		writeGauge(&b, "portfolio_memory_alloc_bytes", "Current heap allocation in bytes", float64(m.Alloc))
		writeGauge(&b, "portfolio_gc_runs_total", "Total number of GC runs", float64(m.NumGC))

		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				stats := sqlDB.Stats()
				writeGauge(&b, "portfolio_db_open_connections", "Number of open DB connections", float64(stats.OpenConnections))
				writeGauge(&b, "portfolio_db_in_use_connections", "Number of in-use DB connections", float64(stats.InUse))
			}
		}

		writeGauge(&b, "portfolio_sse_active_clients", "Number of active SSE connections", float64(services.GetSSEHub().ClientCount()))

		queueAsync := 0.0
		if q := services.GetTaskQueue(); q != nil && q.IsAsync() {
			queueAsync = 1.0
		}
		writeGauge(&b, "portfolio_queue_async_enabled", "Whether async queue (Redis) is enabled (1=yes, 0=no)", queueAsync)

		if db != nil {
			var projects, featured, experiences, educations, messages, unread int64
			db.Model(&models.Project{}).Count(&projects)
			db.Model(&models.Project{}).Where("is_featured = ?", true).Count(&featured)
			db.Model(&models.Experience{}).Count(&experiences)
			db.Model(&models.Education{}).Count(&educations)
			db.Model(&models.ContactMessage{}).Count(&messages)
			db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unread)

			writeGauge(&b, "portfolio_projects_total", "Total number of projects", float64(projects))
			writeGauge(&b, "portfolio_projects_featured", "Number of featured projects", float64(featured))
			writeGauge(&b, "portfolio_experiences_total", "Total number of experience entries", float64(experiences))
			writeGauge(&b, "portfolio_educations_total", "Total number of education entries", float64(educations))
			writeGauge(&b, "portfolio_messages_total", "Total number of contact messages", float64(messages))
			writeGauge(&b, "portfolio_messages_unread", "Number of unread contact messages", float64(unread))
		}

		c.Data(200, "text/plain; version=0.0.4; charset=utf-8", []byte(b.String()))
	}
}

func writeGauge(b *strings.Builder, name, help string, value float64) {
	fmt.Fprintf(b, "# HELP %s %s\n", name, help)
	fmt.Fprintf(b, "# TYPE %s gauge\n", name)
	fmt.Fprintf(b, "%s %g\n\n", name, value)
}
