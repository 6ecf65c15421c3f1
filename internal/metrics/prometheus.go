package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthbot_chat_requests_total",
			Help: "Total number of chat requests handled",
		},
		[]string{"status"},
	)

	GenerationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthbot_generation_total",
			Help: "Generation attempts by outcome",
		},
		[]string{"outcome"},
	)

	GenerationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthbot_generation_duration_seconds",
			Help:    "Generation provider call duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)

	FallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "healthbot_fallback_responses_total",
			Help: "Total replies served from the fallback synthesizer",
		},
	)

	UserCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthbot_user_cache_total",
			Help: "User lookup cache hits and misses",
		},
		[]string{"result"},
	)
)

func Init() {
	prometheus.MustRegister(ChatTotal)
	prometheus.MustRegister(GenerationTotal)
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(FallbackTotal)
	prometheus.MustRegister(UserCacheTotal)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
