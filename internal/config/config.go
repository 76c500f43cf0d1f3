// Package config defines stub configuration structures and loading hooks.
package config

// Storage backend names accepted in configuration.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config contains the stub configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// APIPrefix gates which request paths the stub intercepts.
	APIPrefix string `koanf:"api_prefix"`

	// LatencyMinMS and LatencyMaxMS bound the artificial response delay.
	LatencyMinMS int `koanf:"latency_min_ms"`
	LatencyMaxMS int `koanf:"latency_max_ms"`

	// Backend selects the persistence slot: memory, file, or sqlite.
	Backend string `koanf:"backend"`

	// StoragePath locates the file or sqlite database for persistent
	// backends. Ignored for the memory backend.
	StoragePath string `koanf:"storage_path"`

	// SlotName names the storage cell holding the skill collection.
	SlotName string `koanf:"slot_name"`

	// MetricsAddr, when set, serves Prometheus metrics from the demo
	// binary, e.g. ":9090". Empty disables the endpoint.
	MetricsAddr string `koanf:"metrics_addr"`
}

// Default latency applied when nothing is configured.
const defaultLatencyMS = 200

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		APIPrefix:    "/api",
		LatencyMinMS: defaultLatencyMS,
		LatencyMaxMS: defaultLatencyMS,
		Backend:      BackendMemory,
		StoragePath:  "skillstub.json",
		SlotName:     "skills",
		MetricsAddr:  "",
	}
}
