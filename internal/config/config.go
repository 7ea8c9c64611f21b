// Package config handles configuration for the explorer: defaults, an
// optional JSON overlay, and command-line flags, applied in that order.
package config

// Config holds the runtime settings.
//
// Fields:
//   - DatabasePath: SQLite file backing the credential store. Relative paths
//     resolve against the working directory.
//   - DatabaseDSN: optional PostgreSQL DSN; when set it takes precedence over
//     DatabasePath.
//   - DatasetPath: CSV file with the symptom/diagnosis dataset.
type Config struct {
	DatabasePath string
	DatabaseDSN  string
	DatasetPath  string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "users.db"
	c.DatabaseDSN = ""
	c.DatasetPath = "synthetic_medical_symptoms_and_diagnosis_dataset.csv"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
