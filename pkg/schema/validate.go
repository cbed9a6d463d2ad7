package schema

import "fmt"

// FieldError reports a constraint violation on a specific field.
type FieldError struct {
	// Field is the dotted path to the offending field (e.g. "api.port").
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMain checks a MainConfig against its constraints and returns every
// violation found. An empty slice means the document is valid.
func ValidateMain(cfg *MainConfig) []FieldError {
	var errs []FieldError

	if cfg.System.Name == "" {
		errs = append(errs, FieldError{
			Field:   "system.name",
			Message: "system name is required",
		})
	}

	errs = append(errs, validatePort("api.port", cfg.API.Port)...)
	errs = append(errs, validateOptionalPort("database.port", cfg.Database.Port)...)
	errs = append(errs, validateOptionalPort("cache.port", cfg.Cache.Port)...)

	if cfg.API.RateLimit.RequestsPerMinute < 0 {
		errs = append(errs, FieldError{
			Field:   "api.rate_limit.requests_per_minute",
			Message: "requests per minute must be non-negative",
		})
	}
	if cfg.API.RateLimit.RequestsPerHour < 0 {
		errs = append(errs, FieldError{
			Field:   "api.rate_limit.requests_per_hour",
			Message: "requests per hour must be non-negative",
		})
	}

	errs = append(errs, validateTemperature("ai.temperature", cfg.AI.Temperature)...)
	if cfg.AI.MaxTokens < 0 {
		errs = append(errs, FieldError{
			Field:   "ai.max_tokens",
			Message: "max tokens must be non-negative",
		})
	}
	if cfg.AI.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "ai.timeout",
			Message: "timeout must be non-negative",
		})
	}

	if cfg.Database.PoolSize < 0 {
		errs = append(errs, FieldError{
			Field:   "database.pool_size",
			Message: "pool size must be non-negative",
		})
	}
	if cfg.Cache.TTL < 0 {
		errs = append(errs, FieldError{
			Field:   "cache.ttl",
			Message: "ttl must be non-negative",
		})
	}

	return errs
}

// ValidateAssets checks an AssetsConfig and returns every violation found.
func ValidateAssets(cfg *AssetsConfig) []FieldError {
	var errs []FieldError

	for pair, pc := range cfg.Assets.Forex.Pairs {
		prefix := "assets.forex.pairs." + pair
		errs = append(errs, validateLotSizes(prefix, pc.MinLotSize, pc.MaxLotSize)...)
		errs = append(errs, validateFraction(prefix+".margin_requirement", pc.MarginRequirement)...)
	}
	for name, cc := range cfg.Assets.Commodities.Instruments {
		prefix := "assets.commodities.instruments." + name
		errs = append(errs, validateLotSizes(prefix, cc.MinLotSize, cc.MaxLotSize)...)
		errs = append(errs, validateFraction(prefix+".margin_requirement", cc.MarginRequirement)...)
	}
	for pair, cp := range cfg.Assets.Crypto.Pairs {
		prefix := "assets.crypto.pairs." + pair
		errs = append(errs, validateLotSizes(prefix, cp.MinLotSize, cp.MaxLotSize)...)
		errs = append(errs, validateFraction(prefix+".margin_requirement", cp.MarginRequirement)...)
	}
	for name, ic := range cfg.Assets.Indices.Instruments {
		prefix := "assets.indices.instruments." + name
		errs = append(errs, validateLotSizes(prefix, ic.MinLotSize, ic.MaxLotSize)...)
		errs = append(errs, validateFraction(prefix+".margin_requirement", ic.MarginRequirement)...)
	}

	if cfg.GlobalSettings.DefaultSlippage < 0 {
		errs = append(errs, FieldError{
			Field:   "global_settings.default_slippage",
			Message: "default slippage must be non-negative",
		})
	}
	if cfg.GlobalSettings.OrderExecutionTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "global_settings.order_execution_timeout",
			Message: "order execution timeout must be non-negative",
		})
	}

	return errs
}

// ValidateRiskProfile checks a RiskProfileConfig and returns every
// violation found.
func ValidateRiskProfile(cfg *RiskProfileConfig) []FieldError {
	var errs []FieldError

	if cfg.Name == "" {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "profile name is required",
		})
	}

	errs = append(errs, validateFraction("account.max_risk_per_trade", cfg.Account.MaxRiskPerTrade)...)
	errs = append(errs, validateFraction("account.max_daily_loss", cfg.Account.MaxDailyLoss)...)
	errs = append(errs, validateFraction("account.max_weekly_loss", cfg.Account.MaxWeeklyLoss)...)
	errs = append(errs, validateFraction("account.max_monthly_loss", cfg.Account.MaxMonthlyLoss)...)
	errs = append(errs, validateFraction("account.max_total_exposure", cfg.Account.MaxTotalExposure)...)

	if cfg.Position.MaxPositionSize < 0 {
		errs = append(errs, FieldError{
			Field:   "position.max_position_size",
			Message: "max position size must be non-negative",
		})
	}
	if cfg.Position.MaxPositionsTotal < 0 {
		errs = append(errs, FieldError{
			Field:   "position.max_positions_total",
			Message: "max positions must be non-negative",
		})
	}

	if cfg.Leverage.Default < 0 {
		errs = append(errs, FieldError{
			Field:   "leverage.default",
			Message: "leverage must be non-negative",
		})
	}
	if cfg.Leverage.Max < 0 {
		errs = append(errs, FieldError{
			Field:   "leverage.max",
			Message: "leverage must be non-negative",
		})
	}
	if cfg.Leverage.Max > 0 && cfg.Leverage.Default > cfg.Leverage.Max {
		errs = append(errs, FieldError{
			Field:   "leverage.default",
			Message: "default leverage exceeds maximum leverage",
		})
	}

	errs = append(errs, validateFraction("stop_loss.default_percent", cfg.StopLoss.DefaultPercent)...)
	if cfg.TakeProfit.DefaultRewardRiskRatio < 0 {
		errs = append(errs, FieldError{
			Field:   "take_profit.default_reward_risk_ratio",
			Message: "reward risk ratio must be non-negative",
		})
	}
	for i, level := range cfg.TakeProfit.PartialExitLevels {
		field := fmt.Sprintf("take_profit.partial_exit_levels[%d].percent", i)
		errs = append(errs, validateFraction(field, level.Percent)...)
	}

	for i, threshold := range cfg.Drawdown.Thresholds {
		field := fmt.Sprintf("drawdown.thresholds[%d].level", i)
		errs = append(errs, validateFraction(field, threshold.Level)...)
	}

	for class, limit := range cfg.AssetClassLimits {
		errs = append(errs, validateFraction("asset_class_limits."+class+".max_exposure", limit.MaxExposure)...)
		if limit.MaxPositions < 0 {
			errs = append(errs, FieldError{
				Field:   "asset_class_limits." + class + ".max_positions",
				Message: "max positions must be non-negative",
			})
		}
	}

	return errs
}

// ValidateStrategy checks a StrategyConfig and returns every violation found.
func ValidateStrategy(cfg *StrategyConfig) []FieldError {
	var errs []FieldError

	if cfg.Name == "" {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "strategy name is required",
		})
	}
	if cfg.Type == "" {
		errs = append(errs, FieldError{
			Field:   "type",
			Message: "strategy type is required",
		})
	}

	for name, ind := range cfg.Parameters.Indicators {
		if ind.Period < 0 {
			errs = append(errs, FieldError{
				Field:   "parameters.indicators." + name + ".period",
				Message: "indicator period must be non-negative",
			})
		}
	}

	sizing := cfg.Parameters.PositionSizing
	errs = append(errs, validateFraction("parameters.position_sizing.risk_per_trade", sizing.RiskPerTrade)...)
	if sizing.MinPositionSize < 0 {
		errs = append(errs, FieldError{
			Field:   "parameters.position_sizing.min_position_size",
			Message: "min position size must be non-negative",
		})
	}
	if sizing.MaxPositionSize > 0 && sizing.MinPositionSize > sizing.MaxPositionSize {
		errs = append(errs, FieldError{
			Field:   "parameters.position_sizing.min_position_size",
			Message: "min position size exceeds max position size",
		})
	}

	if cfg.Parameters.Entry.Long.ConfirmationRequired < 0 {
		errs = append(errs, FieldError{
			Field:   "parameters.entry.long.confirmation_required",
			Message: "confirmation count must be non-negative",
		})
	}
	if cfg.Parameters.Entry.Short.ConfirmationRequired < 0 {
		errs = append(errs, FieldError{
			Field:   "parameters.entry.short.confirmation_required",
			Message: "confirmation count must be non-negative",
		})
	}

	return errs
}

// ValidateAgent checks an AgentConfig and returns every violation found.
func ValidateAgent(cfg *AgentConfig) []FieldError {
	var errs []FieldError

	if cfg.Name == "" {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "agent name is required",
		})
	}
	if cfg.Type == "" {
		errs = append(errs, FieldError{
			Field:   "type",
			Message: "agent type is required",
		})
	}

	errs = append(errs, validateTemperature("core.temperature", cfg.Core.Temperature)...)
	if cfg.Core.MaxTokens < 0 {
		errs = append(errs, FieldError{
			Field:   "core.max_tokens",
			Message: "max tokens must be non-negative",
		})
	}
	if cfg.Core.ContextWindow < 0 {
		errs = append(errs, FieldError{
			Field:   "core.context_window",
			Message: "context window must be non-negative",
		})
	}

	if dm := cfg.DecisionMaking; dm != nil {
		errs = append(errs, validateFraction("decision_making.confidence_threshold", dm.ConfidenceThreshold)...)
		if dm.Factors != nil {
			errs = append(errs, validateFraction("decision_making.factors.technical_analysis", dm.Factors.TechnicalAnalysis)...)
			errs = append(errs, validateFraction("decision_making.factors.fundamental_analysis", dm.Factors.FundamentalAnalysis)...)
			errs = append(errs, validateFraction("decision_making.factors.sentiment_analysis", dm.Factors.SentimentAnalysis)...)
			errs = append(errs, validateFraction("decision_making.factors.risk_metrics", dm.Factors.RiskMetrics)...)
		}
	}

	if exec := cfg.Execution; exec != nil {
		for i, ot := range exec.OrderTypes {
			if !validOrderType(ot) {
				errs = append(errs, FieldError{
					Field:   fmt.Sprintf("execution.order_types[%d]", i),
					Message: fmt.Sprintf("unknown order type %q", ot),
				})
			}
		}
		errs = append(errs, validateFraction("execution.execution_strategy.slippage_tolerance", exec.ExecutionStrategy.SlippageTolerance)...)
	}

	if pf := cfg.Portfolio; pf != nil {
		errs = append(errs, validateFraction("portfolio.allocation.forex", pf.Allocation.Forex)...)
		errs = append(errs, validateFraction("portfolio.allocation.commodities", pf.Allocation.Commodities)...)
		errs = append(errs, validateFraction("portfolio.allocation.crypto", pf.Allocation.Crypto)...)
		errs = append(errs, validateFraction("portfolio.allocation.indices", pf.Allocation.Indices)...)
	}

	return errs
}

// validatePort rejects ports outside [1, 65535].
func validatePort(field string, port int) []FieldError {
	if port < 1 || port > 65535 {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("port must be between 1 and 65535, got %d", port),
		}}
	}
	return nil
}

// validateOptionalPort accepts zero as unset.
func validateOptionalPort(field string, port int) []FieldError {
	if port == 0 {
		return nil
	}
	return validatePort(field, port)
}

// validateLotSizes rejects negative lot sizes and an inverted min/max pair.
func validateLotSizes(prefix string, min, max float64) []FieldError {
	var errs []FieldError
	if min < 0 {
		errs = append(errs, FieldError{
			Field:   prefix + ".min_lot_size",
			Message: fmt.Sprintf("lot size must not be negative, got %g", min),
		})
	}
	if max < 0 {
		errs = append(errs, FieldError{
			Field:   prefix + ".max_lot_size",
			Message: fmt.Sprintf("lot size must not be negative, got %g", max),
		})
	}
	if max > 0 && min > max {
		errs = append(errs, FieldError{
			Field:   prefix + ".min_lot_size",
			Message: fmt.Sprintf("min lot size %g exceeds max lot size %g", min, max),
		})
	}
	return errs
}

// validateFraction rejects values outside [0, 1].
func validateFraction(field string, v float64) []FieldError {
	if v < 0 || v > 1 {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("value must be between 0 and 1, got %g", v),
		}}
	}
	return nil
}

// validateTemperature rejects model temperatures outside [0, 2].
func validateTemperature(field string, v float64) []FieldError {
	if v < 0 || v > 2 {
		return []FieldError{{
			Field:   field,
			Message: fmt.Sprintf("temperature must be between 0 and 2, got %g", v),
		}}
	}
	return nil
}

func validOrderType(ot string) bool {
	for _, known := range OrderTypes {
		if ot == known {
			return true
		}
	}
	return false
}
