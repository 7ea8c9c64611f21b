package config

import (
	"encoding/json"
	"os"

	"symptomexplorer/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file.
type JsonConfig struct {
	DatabasePath string `json:"database_path"`
	DatabaseDSN  string `json:"database_dsn"`
	DatasetPath  string `json:"dataset_path"`
}

// parseJson overlays configuration values from a JSON file, located via the
// -c or -config command-line flags. When neither flag is set nothing is
// loaded. Keys missing from the file keep their current values. An unreadable
// or invalid file panics: a requested config that cannot be applied should
// stop the process immediately.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	// seed with current values so missing keys are no-ops
	c := &JsonConfig{
		DatabasePath: config.DatabasePath,
		DatabaseDSN:  config.DatabaseDSN,
		DatasetPath:  config.DatasetPath,
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabasePath = c.DatabasePath
	config.DatabaseDSN = c.DatabaseDSN
	config.DatasetPath = c.DatasetPath
}
