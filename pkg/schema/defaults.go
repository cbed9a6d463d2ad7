package schema

// Default values for configuration fields.
const (
	// System defaults
	DefaultSystemName     = "selam-trading-platform"
	DefaultSystemVersion  = "1.0.0"
	DefaultEnvironment    = "development"
	DefaultSystemLogLevel = "INFO"

	// API defaults
	DefaultAPIHost           = "0.0.0.0"
	DefaultAPIPort           = 8000
	DefaultRequestsPerMinute = 100
	DefaultRequestsPerHour   = 5000

	// AI defaults
	DefaultAIProvider      = "openai"
	DefaultAIModel         = "gpt-4"
	DefaultAITemperature   = 0.3
	DefaultAIMaxTokens     = 2000
	DefaultAITimeout       = 30
	DefaultAIRetryAttempts = 3

	// Database defaults
	DefaultDatabaseType     = "postgresql"
	DefaultDatabaseHost     = "localhost"
	DefaultDatabasePort     = 5432
	DefaultDatabasePoolSize = 10

	// Cache defaults
	DefaultCacheType = "redis"
	DefaultCacheHost = "localhost"
	DefaultCachePort = 6379
	DefaultCacheTTL  = 300

	// Agent defaults
	DefaultAgentModel       = "gpt-4"
	DefaultAgentTemperature = 0.3
	DefaultAgentMaxTokens   = 2000

	// Strategy defaults
	DefaultPrimaryTimeframe = "H1"
)

// ApplyMainDefaults fills zero-valued fields of a MainConfig with platform
// defaults. It is idempotent and safe to call multiple times. Boolean fields
// are left at their zero value since absence and false are indistinguishable
// after binding.
func ApplyMainDefaults(cfg *MainConfig) {
	if cfg.System.Name == "" {
		cfg.System.Name = DefaultSystemName
	}
	if cfg.System.Version == "" {
		cfg.System.Version = DefaultSystemVersion
	}
	if cfg.System.Environment == "" {
		cfg.System.Environment = DefaultEnvironment
	}
	if cfg.System.LogLevel == "" {
		cfg.System.LogLevel = DefaultSystemLogLevel
	}

	if cfg.API.Host == "" {
		cfg.API.Host = DefaultAPIHost
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = DefaultAPIPort
	}
	if cfg.API.RateLimit.RequestsPerMinute == 0 {
		cfg.API.RateLimit.RequestsPerMinute = DefaultRequestsPerMinute
	}
	if cfg.API.RateLimit.RequestsPerHour == 0 {
		cfg.API.RateLimit.RequestsPerHour = DefaultRequestsPerHour
	}

	if cfg.AI.Provider == "" {
		cfg.AI.Provider = DefaultAIProvider
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultAIModel
	}
	if cfg.AI.Temperature == 0 {
		cfg.AI.Temperature = DefaultAITemperature
	}
	if cfg.AI.MaxTokens == 0 {
		cfg.AI.MaxTokens = DefaultAIMaxTokens
	}
	if cfg.AI.Timeout == 0 {
		cfg.AI.Timeout = DefaultAITimeout
	}
	if cfg.AI.RetryAttempts == 0 {
		cfg.AI.RetryAttempts = DefaultAIRetryAttempts
	}

	if cfg.Database.Type == "" {
		cfg.Database.Type = DefaultDatabaseType
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDatabaseHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDatabasePort
	}
	if cfg.Database.PoolSize == 0 {
		cfg.Database.PoolSize = DefaultDatabasePoolSize
	}

	if cfg.Cache.Type == "" {
		cfg.Cache.Type = DefaultCacheType
	}
	if cfg.Cache.Host == "" {
		cfg.Cache.Host = DefaultCacheHost
	}
	if cfg.Cache.Port == 0 {
		cfg.Cache.Port = DefaultCachePort
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = DefaultCacheTTL
	}
}

// ApplyStrategyDefaults fills zero-valued fields of a StrategyConfig.
func ApplyStrategyDefaults(cfg *StrategyConfig) {
	if cfg.Parameters.PrimaryTimeframe == "" {
		cfg.Parameters.PrimaryTimeframe = DefaultPrimaryTimeframe
	}
	if cfg.Version == "" {
		cfg.Version = DefaultSystemVersion
	}
}

// ApplyAgentDefaults fills zero-valued fields of an AgentConfig.
func ApplyAgentDefaults(cfg *AgentConfig) {
	if cfg.Core.Model == "" {
		cfg.Core.Model = DefaultAgentModel
	}
	if cfg.Core.Temperature == 0 {
		cfg.Core.Temperature = DefaultAgentTemperature
	}
	if cfg.Core.MaxTokens == 0 {
		cfg.Core.MaxTokens = DefaultAgentMaxTokens
	}
	if cfg.Version == "" {
		cfg.Version = DefaultSystemVersion
	}
}
