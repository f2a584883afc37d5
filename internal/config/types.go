package config

import "time"

// Config is the top-level lexicon configuration, corresponding to .lexicon.yml.
type Config struct {
	APIBase         string        `yaml:"api_base" koanf:"api_base"`
	Port            int           `yaml:"port" koanf:"port"`
	DataDir         string        `yaml:"data_dir" koanf:"data_dir"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	NoticeDelay     time.Duration `yaml:"notice_delay" koanf:"notice_delay"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
	Title           string        `yaml:"title" koanf:"title"`
	HomeMarkdown    string        `yaml:"home_markdown" koanf:"home_markdown"`
}
