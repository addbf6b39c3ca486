package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/talenthub"
	ConfigFileName    = "talenthub.yml"
)

// Config holds all server configuration settings.
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port
	Port int `yaml:"port" json:"port"`

	// TokenTTL is the credential lifetime in seconds
	TokenTTL int `yaml:"token_ttl" json:"token_ttl"`

	// DefaultPageSize is the page size applied when a list request names none
	DefaultPageSize int `yaml:"default_page_size" json:"default_page_size"`

	// MaxPageSize is the largest page size a list request may ask for
	MaxPageSize int `yaml:"max_page_size" json:"max_page_size"`

	// CORSAllowedOrigins is the list of origins allowed by the CORS layer
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" json:"cors_allowed_origins"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source.
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newDefault() *Config {
	return &Config{
		BindAddress:        "0.0.0.0",
		Port:               8000,
		TokenTTL:           604800, // 7 days
		DefaultPageSize:    10,
		MaxPageSize:        100,
		CORSAllowedOrigins: []string{"http://localhost:8080", "http://localhost:5173"},
		sources:            make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "token_ttl",
		"default_page_size", "max_page_size", "cors_allowed_origins",
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("TALENTHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

// Reload re-reads the configuration sources into c. Attributes revert to
// their defaults before the file and environment are applied again, so a
// removed override takes effect as well as a changed one.
func (c *Config) Reload() error {
	fresh, err := Load()
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.TokenTTL != 0 {
		c.TokenTTL = file.TokenTTL
		c.sources["token_ttl"] = "file"
	}
	if file.DefaultPageSize != 0 {
		c.DefaultPageSize = file.DefaultPageSize
		c.sources["default_page_size"] = "file"
	}
	if file.MaxPageSize != 0 {
		c.MaxPageSize = file.MaxPageSize
		c.sources["max_page_size"] = "file"
	}
	if len(file.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = file.CORSAllowedOrigins
		c.sources["cors_allowed_origins"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("TALENTHUB_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("TALENTHUB_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("TALENTHUB_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTL = i
			c.sources["token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("TALENTHUB_DEFAULT_PAGE_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.DefaultPageSize = i
			c.sources["default_page_size"] = "environment"
		}
	}
	if val := os.Getenv("TALENTHUB_MAX_PAGE_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxPageSize = i
			c.sources["max_page_size"] = "environment"
		}
	}
	if val := os.Getenv("TALENTHUB_CORS_ALLOWED_ORIGINS"); val != "" {
		c.CORSAllowedOrigins = splitAndTrim(val)
		c.sources["cors_allowed_origins"] = "environment"
	}
}

func splitAndTrim(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ConfigFilePath returns the path to the config file.
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute.
func (c *Config) Source(name string) string {
	if src, ok := c.sources[name]; ok {
		return src
	}
	return "default"
}

// Attributes returns all configuration attributes with values and sources,
// sorted by name. Used by "talenthub configuration show".
func (c *Config) Attributes() []Attribute {
	attrs := []Attribute{
		{Name: "bind_address", Value: c.BindAddress},
		{Name: "port", Value: strconv.Itoa(c.Port)},
		{Name: "token_ttl", Value: strconv.Itoa(c.TokenTTL)},
		{Name: "default_page_size", Value: strconv.Itoa(c.DefaultPageSize)},
		{Name: "max_page_size", Value: strconv.Itoa(c.MaxPageSize)},
		{Name: "cors_allowed_origins", Value: strings.Join(c.CORSAllowedOrigins, ",")},
	}
	for i := range attrs {
		attrs[i].Source = c.Source(attrs[i].Name)
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-25s %-45s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-25s %-45s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-25s %-45s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
