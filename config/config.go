package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds all configuration for the bot service
type Config struct {
	Telegram   TelegramConfig
	Downloader DownloaderConfig
	SaveIG     SaveIGConfig
	Kafka      KafkaConfig
	Logging    LoggingConfig
	Service    ServiceConfig
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken string
}

// DownloaderConfig holds yt-dlp configuration
type DownloaderConfig struct {
	YtDlpPath      string
	FFmpegPath     string
	TempDir        string
	Timeout        time.Duration
	VideoFormat    string
	MergeFormat    string
	AudioFormat    string
	AudioCodec     string
	AudioQuality   string
	MaxUploadBytes int64
}

// SaveIGConfig holds Instagram metadata API configuration
type SaveIGConfig struct {
	APIURL  string
	Timeout time.Duration
}

// KafkaConfig holds Kafka configuration.
// Empty Brokers disables download event publishing.
type KafkaConfig struct {
	Brokers        []string
	DownloadsTopic string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// ServiceConfig holds service configuration
type ServiceConfig struct {
	Name string
	Port string
}

// Result provides config parts for fx dependency injection using fx.Out pattern
type Result struct {
	fx.Out

	Config     *Config
	Telegram   *TelegramConfig
	Downloader *DownloaderConfig
	SaveIG     *SaveIGConfig
	Kafka      *KafkaConfig
	Logging    *LoggingConfig
	Service    *ServiceConfig
}

// Out loads configuration and returns Result for fx injection
func Out() (Result, error) {
	cfg, err := Load()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config:     cfg,
		Telegram:   &cfg.Telegram,
		Downloader: &cfg.Downloader,
		SaveIG:     &cfg.SaveIG,
		Kafka:      &cfg.Kafka,
		Logging:    &cfg.Logging,
		Service:    &cfg.Service,
	}, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	timeout, err := getDuration("DOWNLOAD_TIMEOUT", 15*time.Minute)
	if err != nil {
		return nil, err
	}

	saveigTimeout, err := getDuration("SAVEIG_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	maxUpload, err := getInt64("MAX_UPLOAD_BYTES", 50*1024*1024)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", os.Getenv("BOT_TOKEN")),
		},
		Downloader: DownloaderConfig{
			YtDlpPath:      getEnv("YTDLP_PATH", "yt-dlp"),
			FFmpegPath:     getEnv("FFMPEG_PATH", ""),
			TempDir:        getEnv("DOWNLOAD_TEMP_DIR", ""),
			Timeout:        timeout,
			VideoFormat:    getEnv("VIDEO_FORMAT", "bestvideo+bestaudio/best"),
			MergeFormat:    getEnv("VIDEO_MERGE_FORMAT", "mp4"),
			AudioFormat:    getEnv("AUDIO_FORMAT", "bestaudio/best"),
			AudioCodec:     getEnv("AUDIO_CODEC", "mp3"),
			AudioQuality:   getEnv("AUDIO_QUALITY", "192"),
			MaxUploadBytes: maxUpload,
		},
		SaveIG: SaveIGConfig{
			APIURL:  getEnv("SAVEIG_API_URL", "https://saveig.app/api/ajaxSearch"),
			Timeout: saveigTimeout,
		},
		Kafka: KafkaConfig{
			Brokers:        splitList(getEnv("KAFKA_BROKERS", "")),
			DownloadsTopic: getEnv("KAFKA_DOWNLOADS_TOPIC", "media.downloads"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Service: ServiceConfig{
			Name: getEnv("SERVICE_NAME", "mediagrab-bot"),
			Port: getEnv("SERVICE_PORT", "8081"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if c.Downloader.YtDlpPath == "" {
		return fmt.Errorf("YTDLP_PATH cannot be empty")
	}

	if c.Downloader.Timeout <= 0 {
		return fmt.Errorf("DOWNLOAD_TIMEOUT must be positive")
	}

	if c.Downloader.VideoFormat == "" || c.Downloader.AudioFormat == "" {
		return fmt.Errorf("VIDEO_FORMAT and AUDIO_FORMAT are required")
	}

	if c.Downloader.MergeFormat == "" {
		return fmt.Errorf("VIDEO_MERGE_FORMAT is required")
	}

	if c.Downloader.AudioCodec == "" {
		return fmt.Errorf("AUDIO_CODEC is required")
	}

	if c.Downloader.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}

	if c.SaveIG.APIURL == "" {
		return fmt.Errorf("SAVEIG_API_URL is required")
	}

	if c.SaveIG.Timeout <= 0 {
		return fmt.Errorf("SAVEIG_TIMEOUT must be positive")
	}

	if len(c.Kafka.Brokers) > 0 && c.Kafka.DownloadsTopic == "" {
		return fmt.Errorf("KAFKA_DOWNLOADS_TOPIC is required when KAFKA_BROKERS is set")
	}

	return nil
}

// EventsEnabled reports whether download events should be published
func (c *KafkaConfig) EventsEnabled() bool {
	return len(c.Brokers) > 0
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
