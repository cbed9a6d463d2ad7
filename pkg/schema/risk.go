package schema

// RiskProfileConfig is a named risk management profile bound from
// risk/<name>.yaml. Documents may wrap their content under a top-level
// "risk_management" key, which the loader unwraps before binding.
type RiskProfileConfig struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	Account      AccountRiskConfig  `yaml:"account" json:"account"`
	Position     PositionRiskConfig `yaml:"position" json:"position"`
	Leverage     LeverageConfig     `yaml:"leverage" json:"leverage"`
	StopLoss     StopLossConfig     `yaml:"stop_loss" json:"stop_loss"`
	TakeProfit   TakeProfitConfig   `yaml:"take_profit" json:"take_profit"`
	Volatility   VolatilityConfig   `yaml:"volatility" json:"volatility"`
	Drawdown     DrawdownConfig     `yaml:"drawdown" json:"drawdown"`
	TimeControls TimeControlsConfig `yaml:"time_controls" json:"time_controls"`

	// AssetClassLimits caps exposure per asset class, keyed by class name.
	AssetClassLimits map[string]AssetClassLimit `yaml:"asset_class_limits" json:"asset_class_limits"`
}

// AccountRiskConfig caps losses as fractions of account equity.
type AccountRiskConfig struct {
	MaxRiskPerTrade  float64 `yaml:"max_risk_per_trade" json:"max_risk_per_trade"`
	MaxDailyLoss     float64 `yaml:"max_daily_loss" json:"max_daily_loss"`
	MaxWeeklyLoss    float64 `yaml:"max_weekly_loss" json:"max_weekly_loss"`
	MaxMonthlyLoss   float64 `yaml:"max_monthly_loss" json:"max_monthly_loss"`
	MaxTotalExposure float64 `yaml:"max_total_exposure" json:"max_total_exposure"`
}

// PositionRiskConfig caps open position counts and sizes.
type PositionRiskConfig struct {
	MaxPositionSize        float64 `yaml:"max_position_size" json:"max_position_size"`
	MaxPositionsTotal      int     `yaml:"max_positions_total" json:"max_positions_total"`
	MaxPositionsPerAsset   int     `yaml:"max_positions_per_asset" json:"max_positions_per_asset"`
	MaxPositionsPerClass   int     `yaml:"max_positions_per_asset_class" json:"max_positions_per_asset_class"`
	MaxCorrelationExposure float64 `yaml:"max_correlation_exposure" json:"max_correlation_exposure"`
}

// LeverageConfig sets leverage ceilings overall and per asset class.
type LeverageConfig struct {
	Default            int  `yaml:"default" json:"default"`
	Max                int  `yaml:"max" json:"max"`
	Forex              int  `yaml:"forex" json:"forex"`
	Commodities        int  `yaml:"commodities" json:"commodities"`
	Crypto             int  `yaml:"crypto" json:"crypto"`
	Indices            int  `yaml:"indices" json:"indices"`
	UseDynamicLeverage bool `yaml:"use_dynamic_leverage" json:"use_dynamic_leverage"`
}

// StopLossConfig governs protective stop placement.
type StopLossConfig struct {
	Required        bool    `yaml:"required" json:"required"`
	DefaultPercent  float64 `yaml:"default_percent" json:"default_percent"`
	TrailingStop    bool    `yaml:"trailing_stop" json:"trailing_stop"`
	TrailingStep    float64 `yaml:"trailing_step" json:"trailing_step"`
	MaxStopDistance float64 `yaml:"max_stop_distance" json:"max_stop_distance"`
	UseATRStops     bool    `yaml:"use_atr_stops" json:"use_atr_stops"`
	ATRMultiplier   float64 `yaml:"atr_multiplier" json:"atr_multiplier"`
}

// TakeProfitConfig governs profit target placement.
type TakeProfitConfig struct {
	Required               bool               `yaml:"required" json:"required"`
	DefaultRewardRiskRatio float64            `yaml:"default_reward_risk_ratio" json:"default_reward_risk_ratio"`
	UsePartialExits        bool               `yaml:"use_partial_exits" json:"use_partial_exits"`
	PartialExitLevels      []PartialExitLevel `yaml:"partial_exit_levels" json:"partial_exit_levels"`
}

// PartialExitLevel closes a fraction of a position at a reward multiple.
type PartialExitLevel struct {
	Percent float64 `yaml:"percent" json:"percent"`
	Ratio   float64 `yaml:"ratio" json:"ratio"`
}

// VolatilityConfig adjusts sizing by measured volatility.
type VolatilityConfig struct {
	Measure                    string  `yaml:"measure" json:"measure"`
	AdjustmentEnabled          bool    `yaml:"adjustment_enabled" json:"adjustment_enabled"`
	HighVolatilityThreshold    float64 `yaml:"high_volatility_threshold" json:"high_volatility_threshold"`
	LowVolatilityThreshold     float64 `yaml:"low_volatility_threshold" json:"low_volatility_threshold"`
	PositionSizeMultiplierHigh float64 `yaml:"position_size_multiplier_high" json:"position_size_multiplier_high"`
	PositionSizeMultiplierLow  float64 `yaml:"position_size_multiplier_low" json:"position_size_multiplier_low"`
}

// DrawdownConfig reduces or halts trading at equity drawdown levels.
type DrawdownConfig struct {
	ProtectionEnabled bool                `yaml:"protection_enabled" json:"protection_enabled"`
	Thresholds        []DrawdownThreshold `yaml:"thresholds" json:"thresholds"`
	RecoveryThreshold float64             `yaml:"recovery_threshold" json:"recovery_threshold"`
}

// DrawdownThreshold pairs a drawdown level with a protective action.
type DrawdownThreshold struct {
	Level      float64 `yaml:"level" json:"level"`
	Action     string  `yaml:"action" json:"action"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
	Duration   int     `yaml:"duration" json:"duration"`
}

// TimeControlsConfig restricts when trades may be opened.
type TimeControlsConfig struct {
	TradingHours            map[string]string `yaml:"trading_hours" json:"trading_hours"`
	AvoidHighImpactNews     bool              `yaml:"avoid_high_impact_news" json:"avoid_high_impact_news"`
	NewsBlackoutMinutes     int               `yaml:"news_blackout_minutes" json:"news_blackout_minutes"`
	AvoidMarketOpenMinutes  int               `yaml:"avoid_market_open_minutes" json:"avoid_market_open_minutes"`
	AvoidMarketCloseMinutes int               `yaml:"avoid_market_close_minutes" json:"avoid_market_close_minutes"`
	MaxTradesPerDay         int               `yaml:"max_trades_per_day" json:"max_trades_per_day"`
	MaxTradesPerHour        int               `yaml:"max_trades_per_hour" json:"max_trades_per_hour"`
}

// AssetClassLimit caps exposure and position count for one asset class.
type AssetClassLimit struct {
	MaxExposure  float64 `yaml:"max_exposure" json:"max_exposure"`
	MaxPositions int     `yaml:"max_positions" json:"max_positions"`
}
