package schema

// AssetsConfig is the tradable asset catalog bound from assets.yaml.
type AssetsConfig struct {
	Assets         AssetClasses        `yaml:"assets" json:"assets"`
	GlobalSettings GlobalAssetSettings `yaml:"global_settings" json:"global_settings"`
	Watchlists     map[string][]string `yaml:"watchlists" json:"watchlists"`
}

// AssetClasses groups instruments by asset class.
type AssetClasses struct {
	Forex       ForexAssets     `yaml:"forex" json:"forex"`
	Commodities CommodityAssets `yaml:"commodities" json:"commodities"`
	Crypto      CryptoAssets    `yaml:"crypto" json:"crypto"`
	Indices     IndexAssets     `yaml:"indices" json:"indices"`
}

// ForexAssets holds the foreign exchange pair catalog.
type ForexAssets struct {
	Enabled bool                       `yaml:"enabled" json:"enabled"`
	Pairs   map[string]ForexPairConfig `yaml:"pairs" json:"pairs"`
}

// CommodityAssets holds the commodity instrument catalog.
type CommodityAssets struct {
	Enabled     bool                       `yaml:"enabled" json:"enabled"`
	Instruments map[string]CommodityConfig `yaml:"instruments" json:"instruments"`
}

// CryptoAssets holds the cryptocurrency pair catalog.
type CryptoAssets struct {
	Enabled bool                        `yaml:"enabled" json:"enabled"`
	Pairs   map[string]CryptoPairConfig `yaml:"pairs" json:"pairs"`
}

// IndexAssets holds the index instrument catalog.
type IndexAssets struct {
	Enabled     bool                   `yaml:"enabled" json:"enabled"`
	Instruments map[string]IndexConfig `yaml:"instruments" json:"instruments"`
}

// ForexPairConfig describes one tradable currency pair.
type ForexPairConfig struct {
	Name              string  `yaml:"name" json:"name"`
	PipValue          float64 `yaml:"pip_value" json:"pip_value"`
	MinLotSize        float64 `yaml:"min_lot_size" json:"min_lot_size"`
	MaxLotSize        float64 `yaml:"max_lot_size" json:"max_lot_size"`
	MarginRequirement float64 `yaml:"margin_requirement" json:"margin_requirement"`
	TradingHours      string  `yaml:"trading_hours" json:"trading_hours"`
	SpreadTypical     float64 `yaml:"spread_typical" json:"spread_typical"`
	Commission        float64 `yaml:"commission" json:"commission"`
	Enabled           bool    `yaml:"enabled" json:"enabled"`
}

// CommodityConfig describes one tradable commodity contract.
type CommodityConfig struct {
	Name              string  `yaml:"name" json:"name"`
	Symbol            string  `yaml:"symbol" json:"symbol"`
	Type              string  `yaml:"type" json:"type"`
	MinLotSize        float64 `yaml:"min_lot_size" json:"min_lot_size"`
	MaxLotSize        float64 `yaml:"max_lot_size" json:"max_lot_size"`
	MarginRequirement float64 `yaml:"margin_requirement" json:"margin_requirement"`
	TradingHours      string  `yaml:"trading_hours" json:"trading_hours"`
	SpreadTypical     float64 `yaml:"spread_typical" json:"spread_typical"`
	TickSize          float64 `yaml:"tick_size" json:"tick_size"`
	ContractSize      float64 `yaml:"contract_size" json:"contract_size"`
	Enabled           bool    `yaml:"enabled" json:"enabled"`
}

// CryptoPairConfig describes one tradable cryptocurrency pair.
type CryptoPairConfig struct {
	Name              string  `yaml:"name" json:"name"`
	MinLotSize        float64 `yaml:"min_lot_size" json:"min_lot_size"`
	MaxLotSize        float64 `yaml:"max_lot_size" json:"max_lot_size"`
	MarginRequirement float64 `yaml:"margin_requirement" json:"margin_requirement"`
	TradingHours      string  `yaml:"trading_hours" json:"trading_hours"`
	SpreadTypical     float64 `yaml:"spread_typical" json:"spread_typical"`
	MakerFee          float64 `yaml:"maker_fee" json:"maker_fee"`
	TakerFee          float64 `yaml:"taker_fee" json:"taker_fee"`
	Enabled           bool    `yaml:"enabled" json:"enabled"`
}

// IndexConfig describes one tradable index instrument.
type IndexConfig struct {
	Name              string  `yaml:"name" json:"name"`
	MinLotSize        float64 `yaml:"min_lot_size" json:"min_lot_size"`
	MaxLotSize        float64 `yaml:"max_lot_size" json:"max_lot_size"`
	MarginRequirement float64 `yaml:"margin_requirement" json:"margin_requirement"`
	TradingHours      string  `yaml:"trading_hours" json:"trading_hours"`
	SpreadTypical     float64 `yaml:"spread_typical" json:"spread_typical"`
	Enabled           bool    `yaml:"enabled" json:"enabled"`
}

// GlobalAssetSettings applies across every asset class.
type GlobalAssetSettings struct {
	DefaultSlippage         float64 `yaml:"default_slippage" json:"default_slippage"`
	MaxSlippagePercent      float64 `yaml:"max_slippage_percent" json:"max_slippage_percent"`
	OrderExecutionTimeout   int     `yaml:"order_execution_timeout" json:"order_execution_timeout"`
	PriceUpdateFrequency    int     `yaml:"price_update_frequency" json:"price_update_frequency"`
	HistoricalDataRetention int     `yaml:"historical_data_retention" json:"historical_data_retention"`
}
