package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookingOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_page_operations_total",
		Help: "Booking page operations by name and result",
	}, []string{"operation", "result"})

	filterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "booking_filter_duration_seconds",
		Help:    "Time taken to filter and sort the booking list",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	})

	activePages = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "booking_pages_active",
		Help: "Number of booking pages held in memory",
	})
)

func observeOperation(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	bookingOperations.WithLabelValues(operation, result).Inc()
}
