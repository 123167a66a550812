package config

import "time"

// Config is the root application configuration.
type Config struct {
	Wiktionary WiktionaryConfig `yaml:"wiktionary"`
	Synonyms   SynonymsConfig   `yaml:"synonyms"`
	HTTP       HTTPConfig       `yaml:"http"`
	Cards      CardsConfig      `yaml:"cards"`
	Log        LogConfig        `yaml:"log"`
}

// WiktionaryConfig holds the dictionary mirror endpoints.
type WiktionaryConfig struct {
	PageURL     string `yaml:"page_url"     env:"WIKTIONARY_PAGE_URL"     env-default:"https://ru.wiktionary.org/wiki/"`
	APIURL      string `yaml:"api_url"      env:"WIKTIONARY_API_URL"      env-default:"https://ru.wiktionary.org/w/api.php"`
	SearchLimit int    `yaml:"search_limit" env:"WIKTIONARY_SEARCH_LIMIT" env-default:"10"`
}

// SynonymsConfig holds the synonym site settings.
type SynonymsConfig struct {
	BaseURL   string `yaml:"base_url"   env:"SYNONYMS_BASE_URL"   env-default:"https://synonyms.reverso.net/синонимы/ru/"`
	UserAgent string `yaml:"user_agent" env:"SYNONYMS_USER_AGENT" env-default:"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"`
}

// HTTPConfig holds settings of the shared HTTP client.
type HTTPConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	Retries int           `yaml:"retries" env:"HTTP_RETRIES" env-default:"0"`
}

// CardsConfig holds card rendering and output settings.
type CardsConfig struct {
	MaxExamples  int    `yaml:"max_examples"  env:"CARDS_MAX_EXAMPLES"  env-default:"3"`
	ResultPath   string `yaml:"result_path"   env:"CARDS_RESULT_PATH"   env-default:"./wiktionary-result.csv"`
	ResultDir    string `yaml:"result_dir"    env:"CARDS_RESULT_DIR"    env-default:"."`
	CSVDelimiter string `yaml:"csv_delimiter" env:"CARDS_CSV_DELIMITER" env-default:"~"`
	WriteHTML    bool   `yaml:"write_html"    env:"CARDS_WRITE_HTML"    env-default:"false"`

	// Delimiter is parsed from CSVDelimiter during validation.
	Delimiter rune `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
	// File, when set, receives the log instead of stderr. It is rotated by size.
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"10"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"`
}
