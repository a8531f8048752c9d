package config

import (
	"encoding/json"
	"os"

	"github.com/giuseppedipinto/io-functions-admin/internal/flagx"
)

// JsonConfig mirrors Config for JSON unmarshalling. Values read from the
// file are copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN    string `json:"database_dsn"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint"`
	PageSize       int    `json:"page_size"`
}

// parseJson overlays configuration from the JSON file given via -c/-config.
// When no file is given, the config is left untouched. An unreadable or
// invalid file panics: the binary must not run with half-applied settings.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.DatabaseDSN = c.DatabaseDSN
	config.S3AccessKey = c.S3AccessKey
	config.S3SecretKey = c.S3SecretKey
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	if c.PageSize > 0 {
		config.PageSize = c.PageSize
	}
}
