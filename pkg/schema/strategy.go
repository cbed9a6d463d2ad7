package schema

// StrategyConfig is a named trading strategy bound from
// strategies/<name>.yaml. Documents may wrap their content under a
// top-level "strategy" key, which the loader unwraps before binding.
type StrategyConfig struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Version     string `yaml:"version" json:"version"`

	Parameters    StrategyParameters     `yaml:"parameters" json:"parameters"`
	AssetSettings *StrategyAssetSettings `yaml:"asset_settings" json:"asset_settings"`
}

// StrategyParameters holds the signal generation and sizing rules.
type StrategyParameters struct {
	PrimaryTimeframe       string                     `yaml:"primary_timeframe" json:"primary_timeframe"`
	ConfirmationTimeframes []string                   `yaml:"confirmation_timeframes" json:"confirmation_timeframes"`
	Indicators             map[string]IndicatorConfig `yaml:"indicators" json:"indicators"`
	Entry                  EntryConfig                `yaml:"entry" json:"entry"`
	Exit                   ExitConfig                 `yaml:"exit" json:"exit"`
	PositionSizing         PositionSizingConfig       `yaml:"position_sizing" json:"position_sizing"`
	Filters                *FiltersConfig             `yaml:"filters" json:"filters"`
}

// IndicatorConfig parameterizes one technical indicator. Most fields are
// indicator-specific and optional; only the period is universal.
type IndicatorConfig struct {
	Period            int      `yaml:"period" json:"period"`
	Type              string   `yaml:"type" json:"type"`
	ApplyTo           string   `yaml:"apply_to" json:"apply_to"`
	StdDev            float64  `yaml:"std_dev" json:"std_dev"`
	FastPeriod        int      `yaml:"fast_period" json:"fast_period"`
	SlowPeriod        int      `yaml:"slow_period" json:"slow_period"`
	SignalPeriod      int      `yaml:"signal_period" json:"signal_period"`
	Multiplier        float64  `yaml:"multiplier" json:"multiplier"`
	Overbought        *float64 `yaml:"overbought" json:"overbought"`
	Oversold          *float64 `yaml:"oversold" json:"oversold"`
	ExtremeOverbought *float64 `yaml:"extreme_overbought" json:"extreme_overbought"`
	ExtremeOversold   *float64 `yaml:"extreme_oversold" json:"extreme_oversold"`
	KPeriod           int      `yaml:"k_period" json:"k_period"`
	DPeriod           int      `yaml:"d_period" json:"d_period"`
	Slowing           int      `yaml:"slowing" json:"slowing"`
}

// EntryConfig declares long and short entry conditions.
type EntryConfig struct {
	Long  EntryConditions `yaml:"long" json:"long"`
	Short EntryConditions `yaml:"short" json:"short"`
}

// EntryConditions lists entry signals and how many must agree.
type EntryConditions struct {
	Conditions           []string `yaml:"conditions" json:"conditions"`
	ConfirmationRequired int      `yaml:"confirmation_required" json:"confirmation_required"`
}

// ExitConfig declares how positions are closed.
type ExitConfig struct {
	TakeProfit   ExitTakeProfitConfig `yaml:"take_profit" json:"take_profit"`
	StopLoss     ExitStopLossConfig   `yaml:"stop_loss" json:"stop_loss"`
	TrailingStop *ExitTrailingConfig  `yaml:"trailing_stop" json:"trailing_stop"`
	ExitSignals  []string             `yaml:"exit_signals" json:"exit_signals"`
}

// ExitTakeProfitConfig configures profit taking.
type ExitTakeProfitConfig struct {
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	Method      string  `yaml:"method" json:"method"`
	ATRMultiple float64 `yaml:"atr_multiple" json:"atr_multiple"`
	Target      string  `yaml:"target" json:"target"`
}

// ExitStopLossConfig configures protective stops.
type ExitStopLossConfig struct {
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	Method      string  `yaml:"method" json:"method"`
	ATRMultiple float64 `yaml:"atr_multiple" json:"atr_multiple"`
}

// ExitTrailingConfig configures trailing stop behavior.
type ExitTrailingConfig struct {
	Enabled          bool    `yaml:"enabled" json:"enabled"`
	ActivationProfit float64 `yaml:"activation_profit" json:"activation_profit"`
	TrailDistance    float64 `yaml:"trail_distance" json:"trail_distance"`
}

// PositionSizingConfig determines trade size.
type PositionSizingConfig struct {
	Method          string  `yaml:"method" json:"method"`
	RiskPerTrade    float64 `yaml:"risk_per_trade" json:"risk_per_trade"`
	MinPositionSize float64 `yaml:"min_position_size" json:"min_position_size"`
	MaxPositionSize float64 `yaml:"max_position_size" json:"max_position_size"`
	ScaleInEnabled  bool    `yaml:"scale_in_enabled" json:"scale_in_enabled"`
	ScaleInLevels   int     `yaml:"scale_in_levels" json:"scale_in_levels"`
	ScaleOutEnabled bool    `yaml:"scale_out_enabled" json:"scale_out_enabled"`
	ScaleOutLevels  int     `yaml:"scale_out_levels" json:"scale_out_levels"`
}

// FiltersConfig gates entries on market conditions. Every filter is optional.
type FiltersConfig struct {
	TrendFilter      *TrendFilterConfig      `yaml:"trend_filter" json:"trend_filter"`
	VolatilityFilter *VolatilityFilterConfig `yaml:"volatility_filter" json:"volatility_filter"`
	TimeFilter       *TimeFilterConfig       `yaml:"time_filter" json:"time_filter"`
	SpreadFilter     *SpreadFilterConfig     `yaml:"spread_filter" json:"spread_filter"`
	NewsFilter       *NewsFilterConfig       `yaml:"news_filter" json:"news_filter"`
	RangeFilter      *RangeFilterConfig      `yaml:"range_filter" json:"range_filter"`
}

// TrendFilterConfig restricts entries to trend-aligned signals.
type TrendFilterConfig struct {
	Enabled            bool    `yaml:"enabled" json:"enabled"`
	OnlyTradeWithTrend bool    `yaml:"only_trade_with_trend" json:"only_trade_with_trend"`
	TrendStrengthMin   float64 `yaml:"trend_strength_min" json:"trend_strength_min"`
}

// VolatilityFilterConfig bounds acceptable volatility for entries.
type VolatilityFilterConfig struct {
	Enabled bool    `yaml:"enabled" json:"enabled"`
	MinATR  float64 `yaml:"min_atr" json:"min_atr"`
	MaxATR  float64 `yaml:"max_atr" json:"max_atr"`
}

// TimeFilterConfig restricts entries to trading sessions.
type TimeFilterConfig struct {
	Enabled         bool             `yaml:"enabled" json:"enabled"`
	TradingSessions []TradingSession `yaml:"trading_sessions" json:"trading_sessions"`
	AvoidWeekends   bool             `yaml:"avoid_weekends" json:"avoid_weekends"`
	AvoidHolidays   bool             `yaml:"avoid_holidays" json:"avoid_holidays"`
}

// TradingSession names a tradable window with a weighting.
type TradingSession struct {
	Name   string  `yaml:"name" json:"name"`
	Start  string  `yaml:"start" json:"start"`
	End    string  `yaml:"end" json:"end"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// SpreadFilterConfig rejects entries when the spread is too wide.
type SpreadFilterConfig struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	MaxSpread float64 `yaml:"max_spread" json:"max_spread"`
}

// NewsFilterConfig blacks out entries around high-impact news.
type NewsFilterConfig struct {
	Enabled         bool `yaml:"enabled" json:"enabled"`
	AvoidHighImpact bool `yaml:"avoid_high_impact" json:"avoid_high_impact"`
	BlackoutMinutes int  `yaml:"blackout_minutes" json:"blackout_minutes"`
}

// RangeFilterConfig restricts entries to ranging markets.
type RangeFilterConfig struct {
	Enabled                 bool    `yaml:"enabled" json:"enabled"`
	OnlyTradeRangingMarkets bool    `yaml:"only_trade_ranging_markets" json:"only_trade_ranging_markets"`
	RangeThreshold          float64 `yaml:"range_threshold" json:"range_threshold"`
}

// StrategyAssetSettings scopes a strategy to specific instruments per class.
type StrategyAssetSettings struct {
	Forex       *AssetScopeConfig `yaml:"forex" json:"forex"`
	Commodities *AssetScopeConfig `yaml:"commodities" json:"commodities"`
	Crypto      *AssetScopeConfig `yaml:"crypto" json:"crypto"`
	Indices     *AssetScopeConfig `yaml:"indices" json:"indices"`
}

// AssetScopeConfig selects the instruments a strategy trades in one class.
type AssetScopeConfig struct {
	Enabled     bool     `yaml:"enabled" json:"enabled"`
	Pairs       []string `yaml:"pairs" json:"pairs"`
	Instruments []string `yaml:"instruments" json:"instruments"`
	MinPipMove  int      `yaml:"min_pip_move" json:"min_pip_move"`
}
