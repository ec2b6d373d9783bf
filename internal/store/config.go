package store

// Drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config selects and configures the scenario persistence backend.
type Config struct {
	Driver        string `env:"STORE_DRIVER"         envDefault:"sqlite"`
	SQLitePath    string `env:"STORE_SQLITE_PATH"    envDefault:"unitecon.db"`
	RedisAddr     string `env:"STORE_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"STORE_REDIS_PASSWORD"`
	RedisDB       int    `env:"STORE_REDIS_DB"       envDefault:"0"`
	Namespace     string `env:"SCENARIO_NAMESPACE"   envDefault:"unitecon.scenarios"`
}
