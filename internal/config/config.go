package config

import (
	"fmt"
	"net/url"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StoreConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Name         string `yaml:"name"`
	User         string `yaml:"user"`
	Password     string `yaml:"password"`
	SSLMode      string `yaml:"sslmode"`
	MaxConns     int    `yaml:"max_conns"`
	QueryTimeout int    `yaml:"query_timeout_secs"`
}

type SummarizerConfig struct {
	APIURL      string  `yaml:"api_url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Timeout     int     `yaml:"timeout_secs"`
}

type ArchiveConfig struct {
	Root        string `yaml:"root"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (c *Config) Validate() error {
	if c.Store.Host == "" {
		return fmt.Errorf("store.host is required")
	}
	if c.Store.Name == "" {
		return fmt.Errorf("store.name is required")
	}
	if c.Store.User == "" {
		return fmt.Errorf("store.user is required")
	}
	if c.Summarizer.APIURL == "" {
		return fmt.Errorf("summarizer.api_url is required")
	}
	if c.Summarizer.APIKey == "" {
		return fmt.Errorf("summarizer.api_key is required")
	}
	if c.Archive.Root == "" {
		return fmt.Errorf("archive.root is required")
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Store.Port == 0 {
		c.Store.Port = 5432
	}
	if c.Store.SSLMode == "" {
		c.Store.SSLMode = "require"
	}
	if c.Store.MaxConns == 0 {
		c.Store.MaxConns = 8
	}
	if c.Store.QueryTimeout == 0 {
		c.Store.QueryTimeout = 10
	}
	if c.Summarizer.Model == "" {
		c.Summarizer.Model = "deepseek-chat"
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 1024
	}
	if c.Summarizer.Temperature == 0 {
		c.Summarizer.Temperature = 0.3
	}
	if c.Summarizer.Timeout == 0 {
		c.Summarizer.Timeout = 30
	}
	if c.Archive.FFmpegPath == "" {
		c.Archive.FFmpegPath = "ffmpeg"
	}
	if c.Archive.FFprobePath == "" {
		c.Archive.FFprobePath = "ffprobe"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// DSN builds the pgx connection string for the transcript store.
func (c StoreConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// Addr is the host:port the HTTP server binds to.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
