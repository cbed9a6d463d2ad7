package schema

// AgentConfig is a named AI agent definition bound from agents/<name>.yaml.
// Documents may wrap their content under a top-level "agent" key, which the
// loader unwraps before binding.
type AgentConfig struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description" json:"description"`

	Core           AgentCoreConfig       `yaml:"core" json:"core"`
	Capabilities   AgentCapabilities     `yaml:"capabilities" json:"capabilities"`
	DecisionMaking *DecisionMakingConfig `yaml:"decision_making" json:"decision_making"`
	Execution      *ExecutionConfig      `yaml:"execution" json:"execution"`
	Portfolio      *PortfolioConfig      `yaml:"portfolio" json:"portfolio"`
	Output         *OutputConfig         `yaml:"output" json:"output"`
	Reporting      *ReportingConfig      `yaml:"reporting" json:"reporting"`

	AnalysisFocus []string       `yaml:"analysis_focus" json:"analysis_focus"`
	Integration   map[string]any `yaml:"integration" json:"integration"`
}

// AgentCoreConfig parameterizes the agent's language model.
type AgentCoreConfig struct {
	Model         string  `yaml:"model" json:"model"`
	Temperature   float64 `yaml:"temperature" json:"temperature"`
	MaxTokens     int     `yaml:"max_tokens" json:"max_tokens"`
	ContextWindow int     `yaml:"context_window" json:"context_window"`
	ReasoningMode string  `yaml:"reasoning_mode" json:"reasoning_mode"`
}

// AgentCapabilities toggles what the agent is allowed to do.
type AgentCapabilities struct {
	MarketAnalysis      bool `yaml:"market_analysis" json:"market_analysis"`
	SignalGeneration    bool `yaml:"signal_generation" json:"signal_generation"`
	RiskAssessment      bool `yaml:"risk_assessment" json:"risk_assessment"`
	PortfolioManagement bool `yaml:"portfolio_management" json:"portfolio_management"`
	TradeExecution      bool `yaml:"trade_execution" json:"trade_execution"`
	Learning            bool `yaml:"learning" json:"learning"`
	Backtesting         bool `yaml:"backtesting" json:"backtesting"`
	Research            bool `yaml:"research" json:"research"`
	Reporting           bool `yaml:"reporting" json:"reporting"`
}

// DecisionMakingConfig governs how the agent reaches trade decisions.
type DecisionMakingConfig struct {
	Mode                string           `yaml:"mode" json:"mode"`
	ConfidenceThreshold float64          `yaml:"confidence_threshold" json:"confidence_threshold"`
	MultiFactorAnalysis bool             `yaml:"multi_factor_analysis" json:"multi_factor_analysis"`
	Factors             *DecisionFactors `yaml:"factors" json:"factors"`
	VotingSystem        *VotingSystem    `yaml:"voting_system" json:"voting_system"`
}

// DecisionFactors weights the inputs to a decision; each weight is a
// fraction in [0, 1].
type DecisionFactors struct {
	TechnicalAnalysis   float64 `yaml:"technical_analysis" json:"technical_analysis"`
	FundamentalAnalysis float64 `yaml:"fundamental_analysis" json:"fundamental_analysis"`
	SentimentAnalysis   float64 `yaml:"sentiment_analysis" json:"sentiment_analysis"`
	RiskMetrics         float64 `yaml:"risk_metrics" json:"risk_metrics"`
}

// VotingSystem aggregates strategy votes into a decision.
type VotingSystem struct {
	Enabled    bool     `yaml:"enabled" json:"enabled"`
	MinVotes   int      `yaml:"min_votes" json:"min_votes"`
	Strategies []string `yaml:"strategies" json:"strategies"`
}

// ExecutionConfig governs order placement.
type ExecutionConfig struct {
	Mode              string                  `yaml:"mode" json:"mode"`
	OrderTypes        []string                `yaml:"order_types" json:"order_types"`
	ExecutionStrategy ExecutionStrategyConfig `yaml:"execution_strategy" json:"execution_strategy"`
	PreTradeChecks    []string                `yaml:"pre_trade_checks" json:"pre_trade_checks"`
}

// ExecutionStrategyConfig tunes order execution behavior.
type ExecutionStrategyConfig struct {
	SlippageTolerance   float64 `yaml:"slippage_tolerance" json:"slippage_tolerance"`
	PartialFillsAllowed bool    `yaml:"partial_fills_allowed" json:"partial_fills_allowed"`
	Timeout             int     `yaml:"timeout" json:"timeout"`
	RetryAttempts       int     `yaml:"retry_attempts" json:"retry_attempts"`
	SmartRouting        bool    `yaml:"smart_routing" json:"smart_routing"`
}

// PortfolioConfig governs portfolio construction.
type PortfolioConfig struct {
	Strategy    string              `yaml:"strategy" json:"strategy"`
	Allocation  PortfolioAllocation `yaml:"allocation" json:"allocation"`
	Rebalancing RebalancingConfig   `yaml:"rebalancing" json:"rebalancing"`
}

// PortfolioAllocation splits capital across asset classes; each share is a
// fraction in [0, 1].
type PortfolioAllocation struct {
	Forex       float64 `yaml:"forex" json:"forex"`
	Commodities float64 `yaml:"commodities" json:"commodities"`
	Crypto      float64 `yaml:"crypto" json:"crypto"`
	Indices     float64 `yaml:"indices" json:"indices"`
}

// RebalancingConfig schedules portfolio rebalancing.
type RebalancingConfig struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	Frequency string  `yaml:"frequency" json:"frequency"`
	Threshold float64 `yaml:"threshold" json:"threshold"`
	Method    string  `yaml:"method" json:"method"`
}

// OutputConfig shapes the agent's analysis output.
type OutputConfig struct {
	Format           string `yaml:"format" json:"format"`
	IncludeCharts    bool   `yaml:"include_charts" json:"include_charts"`
	IncludeReasoning bool   `yaml:"include_reasoning" json:"include_reasoning"`
	ConfidenceScores bool   `yaml:"confidence_scores" json:"confidence_scores"`
}

// ReportingConfig schedules agent reports.
type ReportingConfig struct {
	Frequency    string   `yaml:"frequency" json:"frequency"`
	Distribution []string `yaml:"distribution" json:"distribution"`
}

// OrderTypes lists the order types an execution block may declare.
var OrderTypes = []string{"market", "limit", "stop", "stop_limit", "trailing_stop"}
