// Package config loads and validates seolint configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all configuration knobs loaded via Viper. The constant
// tables (blocked sites, CJK hints, encoding priorities, stop words, noise
// selectors) live here so the analyzers receive them as immutable data
// instead of reaching for package-level state.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Charset CharsetConfig `mapstructure:"charset"`
	Audit   AuditConfig   `mapstructure:"audit"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls the serve subcommand.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures the page fetcher.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// CharsetConfig drives the encoding resolver.
type CharsetConfig struct {
	CJKSiteHints     []string `mapstructure:"cjk_site_hints"`
	CJKFallbacks     []string `mapstructure:"cjk_fallbacks"`
	DefaultFallbacks []string `mapstructure:"default_fallbacks"`
	DetectionWindow  int      `mapstructure:"detection_window"`
	MinConfidence    int      `mapstructure:"min_confidence"`
}

// AuditConfig carries the analyzer tables and CLI site lists.
type AuditConfig struct {
	BlockedSites  []string `mapstructure:"blocked_sites"`
	ProbeURLs     []string `mapstructure:"probe_urls"`
	StopWords     []string `mapstructure:"stop_words"`
	StripTags     []string `mapstructure:"strip_tags"`
	NavSelectors  []string `mapstructure:"nav_selectors"`
	ContentTokens []string `mapstructure:"content_tokens"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SEOLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("http.timeout_seconds", 10)
	v.SetDefault("http.user_agent",
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	v.SetDefault("charset.cjk_site_hints", []string{"sina", "baidu", "sohu", "163", "qq", "zhihu"})
	v.SetDefault("charset.cjk_fallbacks", []string{"gbk", "gb2312", "gb18030", "utf-8", "iso-8859-1"})
	v.SetDefault("charset.default_fallbacks", []string{"utf-8", "gbk", "gb2312", "iso-8859-1"})
	v.SetDefault("charset.detection_window", 1024)
	v.SetDefault("charset.min_confidence", 80)
	v.SetDefault("audit.blocked_sites", []string{
		"bbc.com", "wikipedia.org", "twitter.com", "facebook.com", "google.com", "youtube.com",
	})
	v.SetDefault("audit.probe_urls", []string{
		"https://www.baidu.com", "https://www.qq.com", "https://github.com",
	})
	v.SetDefault("audit.stop_words", []string{
		"的", "和", "与", "及", "或", "在", "是", "有", "了", "吗", "呢", "吧", "啊",
	})
	v.SetDefault("audit.strip_tags", []string{
		"script", "style", "noscript", "iframe",
		"nav", "header", "footer", "aside",
		"form", "button", "input",
	})
	v.SetDefault("audit.nav_selectors", []string{
		"nav", ".navigation", ".navbar", ".menu",
		"#nav", "#navigation", "#menu",
		".header", ".footer", ".sidebar",
	})
	v.SetDefault("audit.content_tokens", []string{"content", "post", "article", "main", "entry"})
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Charset.DetectionWindow <= 0 {
		return fmt.Errorf("charset.detection_window must be > 0")
	}
	if c.Charset.MinConfidence <= 0 || c.Charset.MinConfidence > 100 {
		return fmt.Errorf("charset.min_confidence must be in (0,100]")
	}
	return nil
}

// FetchTimeout converts the HTTP timeout config into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}
