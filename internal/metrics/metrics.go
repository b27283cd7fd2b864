package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// UploadMetrics holds Prometheus metrics for media upload batches.
type UploadMetrics struct {
	uploadsTotal   *prometheus.CounterVec
	uploadFailures *prometheus.CounterVec
	uploadLatency  prometheus.Histogram
	batchSize      prometheus.Histogram
}

// NewUploadMetrics creates and registers all upload metrics.
func NewUploadMetrics() *UploadMetrics {
	return &UploadMetrics{
		uploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "media_uploads_total",
				Help: "Total number of successfully uploaded media objects",
			},
			[]string{"category"},
		),
		uploadFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "media_upload_failures_total",
				Help: "Total number of failed media uploads",
			},
			[]string{"category"},
		),
		uploadLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "media_upload_latency_ms",
				Help:    "Latency of single object uploads in milliseconds",
				Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
			},
		),
		batchSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "media_upload_batch_size",
				Help:    "Number of files per upload batch",
				Buckets: []float64{1, 2, 3, 4, 5},
			},
		),
	}
}

// ObserveBatch records the size of one upload batch.
func (m *UploadMetrics) ObserveBatch(size int) {
	if m == nil {
		return
	}
	m.batchSize.Observe(float64(size))
}

// ObserveUpload records the outcome of a single object upload.
func (m *UploadMetrics) ObserveUpload(category string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.uploadFailures.WithLabelValues(category).Inc()
		return
	}
	m.uploadsTotal.WithLabelValues(category).Inc()
	m.uploadLatency.Observe(float64(duration.Microseconds()) / 1000.0)
}
