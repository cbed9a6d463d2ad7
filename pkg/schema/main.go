package schema

// MainConfig is the platform-wide configuration bound from main.yaml,
// optionally overlaid by an environments/<env>.yaml override document.
type MainConfig struct {
	// System identifies the deployment and its logging posture.
	System SystemConfig `yaml:"system" json:"system"`

	// API configures the platform's HTTP API surface.
	API APIConfig `yaml:"api" json:"api"`

	// AI configures the language-model integration used by agents.
	AI AIConfig `yaml:"ai" json:"ai"`

	// Database configures the relational store.
	Database DatabaseConfig `yaml:"database" json:"database"`

	// Cache configures the shared cache tier.
	Cache CacheConfig `yaml:"cache" json:"cache"`

	// Broker configures order-routing providers.
	Broker BrokerConfig `yaml:"broker" json:"broker"`

	// DataFeed configures market data providers.
	DataFeed DataFeedConfig `yaml:"data_feed" json:"data_feed"`

	// Monitoring configures metrics collection and alert channels.
	Monitoring MonitoringConfig `yaml:"monitoring" json:"monitoring"`

	// Security holds authentication and transport security settings.
	Security SecurityConfig `yaml:"security" json:"security"`

	// Features toggles platform capabilities.
	Features FeaturesConfig `yaml:"features" json:"features"`

	// Imports lists additional documents the platform loads at startup.
	Imports []string `yaml:"imports" json:"imports"`
}

// SystemConfig identifies the deployment.
type SystemConfig struct {
	Name        string `yaml:"name" json:"name"`
	Version     string `yaml:"version" json:"version"`
	Environment string `yaml:"environment" json:"environment"`
	Debug       bool   `yaml:"debug" json:"debug"`
	LogLevel    string `yaml:"log_level" json:"log_level"`
}

// APIConfig configures the HTTP API listener.
type APIConfig struct {
	Host        string          `yaml:"host" json:"host"`
	Port        int             `yaml:"port" json:"port"`
	CORSOrigins []string        `yaml:"cors_origins" json:"cors_origins"`
	RateLimit   RateLimitConfig `yaml:"rate_limit" json:"rate_limit"`
}

// RateLimitConfig throttles inbound API requests.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled" json:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute" json:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour" json:"requests_per_hour"`
}

// AIConfig configures the language-model provider.
type AIConfig struct {
	Provider      string      `yaml:"provider" json:"provider"`
	Model         string      `yaml:"model" json:"model"`
	Temperature   float64     `yaml:"temperature" json:"temperature"`
	MaxTokens     int         `yaml:"max_tokens" json:"max_tokens"`
	Timeout       int         `yaml:"timeout" json:"timeout"`
	RetryAttempts int         `yaml:"retry_attempts" json:"retry_attempts"`
	Endpoints     AIEndpoints `yaml:"endpoints" json:"endpoints"`
	Features      AIFeatures  `yaml:"features" json:"features"`
}

// AIEndpoints holds provider base URLs.
type AIEndpoints struct {
	OpenAI    string `yaml:"openai" json:"openai"`
	Anthropic string `yaml:"anthropic" json:"anthropic"`
}

// AIFeatures toggles individual AI capabilities.
type AIFeatures struct {
	SentimentAnalysis bool `yaml:"sentiment_analysis" json:"sentiment_analysis"`
	SignalGeneration  bool `yaml:"signal_generation" json:"signal_generation"`
	RiskAssessment    bool `yaml:"risk_assessment" json:"risk_assessment"`
	MarketCommentary  bool `yaml:"market_commentary" json:"market_commentary"`
}

// DatabaseConfig configures the relational store.
type DatabaseConfig struct {
	Type        string `yaml:"type" json:"type"`
	Host        string `yaml:"host" json:"host"`
	Port        int    `yaml:"port" json:"port"`
	Name        string `yaml:"name" json:"name"`
	PoolSize    int    `yaml:"pool_size" json:"pool_size"`
	PoolTimeout int    `yaml:"pool_timeout" json:"pool_timeout"`
	Echo        bool   `yaml:"echo" json:"echo"`
}

// CacheConfig configures the cache tier.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Type    string `yaml:"type" json:"type"`
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	TTL     int    `yaml:"ttl" json:"ttl"`
	MaxSize int    `yaml:"max_size" json:"max_size"`
}

// BrokerConfig selects and configures order-routing providers.
type BrokerConfig struct {
	DefaultProvider    string                   `yaml:"default_provider" json:"default_provider"`
	MT5                MT5Config                `yaml:"mt5" json:"mt5"`
	InteractiveBrokers InteractiveBrokersConfig `yaml:"interactive_brokers" json:"interactive_brokers"`
	Alpaca             AlpacaConfig             `yaml:"alpaca" json:"alpaca"`
}

// MT5Config configures the MetaTrader 5 bridge.
type MT5Config struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Timeout  int    `yaml:"timeout" json:"timeout"`
	Server   string `yaml:"server" json:"server"`
	Account  string `yaml:"account" json:"account"`
	Password string `yaml:"password" json:"password"`
}

// InteractiveBrokersConfig configures the IB gateway connection.
type InteractiveBrokersConfig struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Timeout  int    `yaml:"timeout" json:"timeout"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	ClientID int    `yaml:"client_id" json:"client_id"`
}

// AlpacaConfig configures the Alpaca REST connection.
type AlpacaConfig struct {
	Enabled    bool   `yaml:"enabled" json:"enabled"`
	Timeout    int    `yaml:"timeout" json:"timeout"`
	BaseURL    string `yaml:"base_url" json:"base_url"`
	APIVersion string `yaml:"api_version" json:"api_version"`
}

// DataFeedConfig configures market data ingestion.
type DataFeedConfig struct {
	PrimaryProvider    string                        `yaml:"primary_provider" json:"primary_provider"`
	UpdateInterval     int                           `yaml:"update_interval" json:"update_interval"`
	HistoricalDataDays int                           `yaml:"historical_data_days" json:"historical_data_days"`
	Providers          map[string]DataProviderConfig `yaml:"providers" json:"providers"`
}

// DataProviderConfig describes a single market data provider.
type DataProviderConfig struct {
	Enabled   bool `yaml:"enabled" json:"enabled"`
	WebSocket bool `yaml:"websocket" json:"websocket"`
	RateLimit int  `yaml:"rate_limit" json:"rate_limit"`
	Fallback  bool `yaml:"fallback" json:"fallback"`
}

// MonitoringConfig configures metrics and alerting.
type MonitoringConfig struct {
	Enabled             bool     `yaml:"enabled" json:"enabled"`
	MetricsInterval     int      `yaml:"metrics_interval" json:"metrics_interval"`
	AlertChannels       []string `yaml:"alert_channels" json:"alert_channels"`
	HealthCheckInterval int      `yaml:"health_check_interval" json:"health_check_interval"`
	PerformanceTracking bool     `yaml:"performance_tracking" json:"performance_tracking"`
}

// SecurityConfig holds authentication and transport settings.
type SecurityConfig struct {
	JWTSecret           string `yaml:"jwt_secret" json:"jwt_secret"`
	JWTExpiry           int    `yaml:"jwt_expiry" json:"jwt_expiry"`
	APIKeyRotationDays  int    `yaml:"api_key_rotation_days" json:"api_key_rotation_days"`
	EncryptionAlgorithm string `yaml:"encryption_algorithm" json:"encryption_algorithm"`
	RequireHTTPS        bool   `yaml:"require_https" json:"require_https"`
}

// FeaturesConfig toggles platform capabilities.
type FeaturesConfig struct {
	PaperTrading          bool `yaml:"paper_trading" json:"paper_trading"`
	LiveTrading           bool `yaml:"live_trading" json:"live_trading"`
	Backtesting           bool `yaml:"backtesting" json:"backtesting"`
	PortfolioOptimization bool `yaml:"portfolio_optimization" json:"portfolio_optimization"`
	SocialTrading         bool `yaml:"social_trading" json:"social_trading"`
	CopyTrading           bool `yaml:"copy_trading" json:"copy_trading"`
	AutomatedRebalancing  bool `yaml:"automated_rebalancing" json:"automated_rebalancing"`
	TaxLossHarvesting     bool `yaml:"tax_loss_harvesting" json:"tax_loss_harvesting"`
}
