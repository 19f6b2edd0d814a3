package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Telegram.BotToken)
	assert.Equal(t, "yt-dlp", cfg.Downloader.YtDlpPath)
	assert.Equal(t, 15*time.Minute, cfg.Downloader.Timeout)
	assert.Equal(t, "bestvideo+bestaudio/best", cfg.Downloader.VideoFormat)
	assert.Equal(t, "mp4", cfg.Downloader.MergeFormat)
	assert.Equal(t, "bestaudio/best", cfg.Downloader.AudioFormat)
	assert.Equal(t, "mp3", cfg.Downloader.AudioCodec)
	assert.Equal(t, "192", cfg.Downloader.AudioQuality)
	assert.Equal(t, int64(50*1024*1024), cfg.Downloader.MaxUploadBytes)
	assert.Equal(t, "https://saveig.app/api/ajaxSearch", cfg.SaveIG.APIURL)
	assert.False(t, cfg.Kafka.EventsEnabled())
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_BotTokenFallback(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("BOT_TOKEN", "legacy-token")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-token", cfg.Telegram.BotToken)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("BOT_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("DOWNLOAD_TIMEOUT", "2m")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Minute, cfg.Downloader.Timeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.EventsEnabled())
	assert.Equal(t, int64(1024), cfg.Downloader.MaxUploadBytes)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("DOWNLOAD_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Telegram: TelegramConfig{BotToken: "token"},
			Downloader: DownloaderConfig{
				YtDlpPath:      "yt-dlp",
				Timeout:        time.Minute,
				VideoFormat:    "best",
				MergeFormat:    "mp4",
				AudioFormat:    "bestaudio",
				AudioCodec:     "mp3",
				MaxUploadBytes: 1,
			},
			SaveIG: SaveIGConfig{APIURL: "http://localhost", Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "no token", mutate: func(c *Config) { c.Telegram.BotToken = "" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.Downloader.Timeout = 0 }, wantErr: true},
		{name: "no codec", mutate: func(c *Config) { c.Downloader.AudioCodec = "" }, wantErr: true},
		{name: "no upload limit", mutate: func(c *Config) { c.Downloader.MaxUploadBytes = 0 }, wantErr: true},
		{name: "brokers without topic", mutate: func(c *Config) { c.Kafka.Brokers = []string{"k:9092"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
