package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

var _ deps.MetricsRecorder = (*Metrics)(nil)

func TestMetrics_RecordLink(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordLink(entities.PlatformYouTube)
	m.RecordLink(entities.PlatformYouTube)
	m.RecordLink(entities.PlatformUnrecognized)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LinksTotal.WithLabelValues("youtube")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LinksTotal.WithLabelValues("unrecognized")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.LinksTotal.WithLabelValues("instagram")))
}

func TestMetrics_RecordDownload(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordDownload(entities.PlatformYouTube, entities.ModeAudio, entities.DownloadStatusSuccess, 12.5)
	m.RecordDownload(entities.PlatformInstagram, "", entities.DownloadStatusFailure, 0.3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DownloadsTotal.WithLabelValues("youtube", "audio", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DownloadsTotal.WithLabelValues("instagram", "none", "failure")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.DownloadDuration))
}

func TestNewMetrics_SeparateRegistries(t *testing.T) {
	// Each registry gets its own collectors, so repeated construction must not panic
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
