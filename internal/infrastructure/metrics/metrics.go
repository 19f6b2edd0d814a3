package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

// Metrics holds all Prometheus metrics for the bot
type Metrics struct {
	// Incoming link metrics
	LinksTotal *prometheus.CounterVec

	// Download flow metrics
	DownloadsTotal   *prometheus.CounterVec
	DownloadDuration *prometheus.HistogramVec
}

// NewMetrics creates all counters and histograms on the given registerer
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LinksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mediagrab_links_total",
				Help: "Total number of submitted links by platform",
			},
			[]string{"platform"},
		),

		DownloadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mediagrab_downloads_total",
				Help: "Total number of finished download flows",
			},
			[]string{"platform", "mode", "status"},
		),
		DownloadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mediagrab_download_duration_seconds",
				Help:    "Duration of download flows in seconds",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 900},
			},
			[]string{"platform", "mode"},
		),
	}
}

// RecordLink records a submitted link
func (m *Metrics) RecordLink(platform entities.Platform) {
	m.LinksTotal.WithLabelValues(string(platform)).Inc()
}

// RecordDownload records a finished download flow with duration
func (m *Metrics) RecordDownload(platform entities.Platform, mode entities.Mode, status entities.DownloadStatus, seconds float64) {
	modeLabel := string(mode)
	if modeLabel == "" {
		modeLabel = "none"
	}
	m.DownloadsTotal.WithLabelValues(string(platform), modeLabel, string(status)).Inc()
	m.DownloadDuration.WithLabelValues(string(platform), modeLabel).Observe(seconds)
}
