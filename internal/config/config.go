package config

import "time"

// Default configuration values.
const (
	defaultServiceName       = "brand-detector"
	defaultServiceVersion    = "1.0.0"
	defaultServicePort       = 8080
	defaultConcurrency       = 10
	defaultMaxResults        = 15
	defaultMaxNERCandidates  = 10
	defaultNERTimeoutSec     = 15
	defaultNERRatePerSec     = 5
	defaultNERModel          = "claude-3-5-haiku-latest"
	defaultHistoryWindowDays = 30
	defaultHistoryMinCount   = 2
	defaultDBHost            = "localhost"
	defaultDBPort            = 5432
	defaultDBUser            = "postgres"
	defaultDBName            = "llumos"
	defaultDBSSLMode         = "disable"
	defaultDBMaxConns        = 25
	defaultDBMaxIdleConns    = 5
	defaultESURL             = "http://localhost:9200"
	defaultESIndex           = "llumos_detections"
	defaultESTimeoutSec      = 30
	defaultLogLevel          = "info"
	defaultLogFormat         = "json"
)

// Config holds all configuration for the brand detector service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Detection     DetectionConfig     `yaml:"detection"`
	NER           NERConfig           `yaml:"ner"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"DETECTOR_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"            yaml:"debug"`
	Concurrency int    `env:"DETECTOR_CONCURRENCY" yaml:"concurrency"`
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ElasticsearchConfig holds Elasticsearch configuration for detection indexing.
type ElasticsearchConfig struct {
	Enabled  bool          `env:"ELASTICSEARCH_ENABLED" yaml:"enabled"`
	URL      string        `env:"ELASTICSEARCH_URL"     yaml:"url"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Index    string        `yaml:"index"`
	Timeout  time.Duration `yaml:"timeout"`
}

// DetectionConfig holds pipeline settings.
type DetectionConfig struct {
	// MaxResults caps the ranked competitor list per detection.
	MaxResults int `yaml:"max_results"`
	// HistoryWindowDays is the rolling window of historical AI responses
	// consulted during gazetteer bootstrapping.
	HistoryWindowDays int `yaml:"history_window_days"`
	// HistoryMinCount is the minimum recurrence for a historical term to
	// enter the gazetteer.
	HistoryMinCount int `yaml:"history_min_count"`
}

// NERConfig holds the LLM fallback settings.
type NERConfig struct {
	Enabled bool   `env:"NER_ENABLED"       yaml:"enabled"`
	APIKey  string `env:"ANTHROPIC_API_KEY" yaml:"api_key"`
	Model   string `yaml:"model"`
	// MaxCandidates bounds the candidate list sent per call.
	MaxCandidates int           `yaml:"max_candidates"`
	Timeout       time.Duration `yaml:"timeout"`
	// RatePerSecond limits outbound NER calls across the whole process.
	RatePerSecond int `yaml:"rate_per_second"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path and applies defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	setDefaults(&cfg)
	// Re-apply env overrides after defaults (env always wins)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setDatabaseDefaults(&cfg.Database)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setDetectionDefaults(&cfg.Detection)
	setNERDefaults(&cfg.NER)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.Index == "" {
		e.Index = defaultESIndex
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
}

func setDetectionDefaults(d *DetectionConfig) {
	if d.MaxResults == 0 {
		d.MaxResults = defaultMaxResults
	}
	if d.HistoryWindowDays == 0 {
		d.HistoryWindowDays = defaultHistoryWindowDays
	}
	if d.HistoryMinCount == 0 {
		d.HistoryMinCount = defaultHistoryMinCount
	}
}

func setNERDefaults(n *NERConfig) {
	if n.Model == "" {
		n.Model = defaultNERModel
	}
	if n.MaxCandidates == 0 {
		n.MaxCandidates = defaultMaxNERCandidates
	}
	if n.Timeout == 0 {
		n.Timeout = defaultNERTimeoutSec * time.Second
	}
	if n.RatePerSecond == 0 {
		n.RatePerSecond = defaultNERRatePerSec
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
