package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pulse_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// NotificationsFanned counts notifications created by fan-out, by type.
var NotificationsFanned = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pulse_notifications_fanout_total",
	Help: "Total number of notifications created by social fan-out",
}, []string{"type"})

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the request-instrumentation handler for the
// Prometheus middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
