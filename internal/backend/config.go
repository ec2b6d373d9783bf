package backend

// Config contains admin backend connection settings.
//   - BaseURL: scheme and host of the backend REST API
//   - APIToken: sent as a bearer token when set
//   - Timeout: per-request timeout (in seconds)
type Config struct {
	BaseURL      string `env:"BACKEND_BASE_URL"      envDefault:"http://localhost:8000"`
	APIToken     string `env:"BACKEND_API_TOKEN"`
	AdaptersPath string `env:"BACKEND_ADAPTERS_PATH" envDefault:"/api/adapters"`
	PricesPath   string `env:"BACKEND_PRICES_PATH"   envDefault:"/api/provider-prices"`
	StatsPath    string `env:"BACKEND_STATS_PATH"    envDefault:"/api/stats/models"`
	Timeout      int    `env:"BACKEND_TIMEOUT"       envDefault:"30"`
}
