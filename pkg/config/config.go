package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/cms-in-go/pkg/db"
)

const (
	DefaultConfigPath = "/etc/cms"
	ConfigFileName    = "cms.yml"

	// DateLayout is the layout of expiry_cutoff.
	DateLayout = "2006-01-02"
)

// ValidOutputs is the list of report formats
var ValidOutputs = []string{"text", "yaml", "markdown", "html"}

// ValidLogLevels is the list of gorm log levels accepted in log_level
var ValidLogLevels = []string{"silent", "error", "warn", "warning", "info", "debug"}

// CMSConfig holds all cmsctl configuration settings
type CMSConfig struct {
	// DatabaseURL is a full connection URL. It wins over the db_* attributes.
	DatabaseURL string `yaml:"database_url" json:"database_url" env:"DATABASE_URL"`

	// Engine is the engine used when DatabaseURL is empty
	Engine string `yaml:"engine" json:"engine" env:"DB_ENGINE"`

	DBUser string `yaml:"db_user" json:"db_user" env:"DB_USER"`
	DBPass string `yaml:"db_pass" json:"db_pass" env:"DB_PASS"`
	DBHost string `yaml:"db_host" json:"db_host" env:"DB_HOST"`
	DBName string `yaml:"db_name" json:"db_name" env:"DB_NAME"`

	// LogLevel is the gorm SQL log level
	LogLevel string `yaml:"log_level" json:"log_level" env:"CMS_LOG_LEVEL"`

	// Output is the report format
	Output string `yaml:"output" json:"output" env:"CMS_OUTPUT"`

	// BannerWidth is the total width of a section banner
	BannerWidth int `yaml:"banner_width" json:"banner_width" env:"CMS_BANNER_WIDTH"`

	// BannerFill is the padding character of a section banner
	BannerFill string `yaml:"banner_fill" json:"banner_fill" env:"CMS_BANNER_FILL"`

	// FixturesPath overrides the embedded seed fixtures
	FixturesPath string `yaml:"fixtures_path" json:"fixtures_path" env:"CMS_FIXTURES_PATH"`

	// ExpiryCutoff is the date secrets are compared against, as YYYY-MM-DD
	ExpiryCutoff string `yaml:"expiry_cutoff" json:"expiry_cutoff" env:"CMS_EXPIRY_CUTOFF"`

	// AuditLog is where audit events go: empty (disabled), "stderr" or a file path
	AuditLog string `yaml:"audit_log" json:"audit_log" env:"CMS_AUDIT_LOG"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// newDefault returns a config with default values
func newDefault() *CMSConfig {
	return &CMSConfig{
		Engine:       db.EngineMySQL.String(),
		DBName:       "cms_go",
		LogLevel:     "silent",
		Output:       "text",
		BannerWidth:  100,
		BannerFill:   "=",
		ExpiryCutoff: "2023-11-01",
		sources:      make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*CMSConfig, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CMS_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig CMSConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	if err := config.applyEnvConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

func attributeNames() []string {
	return []string{
		"database_url", "engine", "db_user", "db_pass", "db_host", "db_name",
		"log_level", "output", "banner_width", "banner_fill",
		"fixtures_path", "expiry_cutoff", "audit_log",
	}
}

// envAttributes maps environment variables onto attribute names
var envAttributes = map[string]string{
	"DATABASE_URL":      "database_url",
	"DB_ENGINE":         "engine",
	"DB_USER":           "db_user",
	"DB_PASS":           "db_pass",
	"DB_HOST":           "db_host",
	"DB_NAME":           "db_name",
	"CMS_LOG_LEVEL":     "log_level",
	"CMS_OUTPUT":        "output",
	"CMS_BANNER_WIDTH":  "banner_width",
	"CMS_BANNER_FILL":   "banner_fill",
	"CMS_FIXTURES_PATH": "fixtures_path",
	"CMS_EXPIRY_CUTOFF": "expiry_cutoff",
	"CMS_AUDIT_LOG":     "audit_log",
}

func (c *CMSConfig) applyFileConfig(file *CMSConfig) {
	setString := func(name string, dst *string, value string) {
		if value != "" {
			*dst = value
			c.sources[name] = "file"
		}
	}
	setString("database_url", &c.DatabaseURL, file.DatabaseURL)
	setString("engine", &c.Engine, file.Engine)
	setString("db_user", &c.DBUser, file.DBUser)
	setString("db_pass", &c.DBPass, file.DBPass)
	setString("db_host", &c.DBHost, file.DBHost)
	setString("db_name", &c.DBName, file.DBName)
	setString("log_level", &c.LogLevel, file.LogLevel)
	setString("output", &c.Output, file.Output)
	setString("banner_fill", &c.BannerFill, file.BannerFill)
	setString("fixtures_path", &c.FixturesPath, file.FixturesPath)
	setString("expiry_cutoff", &c.ExpiryCutoff, file.ExpiryCutoff)
	setString("audit_log", &c.AuditLog, file.AuditLog)
	if file.BannerWidth != 0 {
		c.BannerWidth = file.BannerWidth
		c.sources["banner_width"] = "file"
	}
}

// applyEnvConfig overlays the environment. Unset variables leave the
// current value, so file values survive.
func (c *CMSConfig) applyEnvConfig() error {
	err := env.ParseWithOptions(c, env.Options{
		OnSet: func(tag string, value any, isDefault bool) {
			if isDefault || fmt.Sprint(value) == "" {
				return
			}
			if name, ok := envAttributes[tag]; ok {
				c.sources[name] = "environment"
			}
		},
	})
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ConfigFilePath returns the path to the config file
func (c *CMSConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *CMSConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// URL returns the connection URL: DatabaseURL when set, otherwise one built
// from the engine and the db_* attributes.
func (c *CMSConfig) URL() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if strings.EqualFold(c.Engine, db.EngineSQLite.String()) {
		return "sqlite://" + c.DBName
	}

	u := url.URL{
		Scheme: strings.ToLower(c.Engine),
		Host:   c.DBHost,
		Path:   "/" + c.DBName,
	}
	switch {
	case c.DBPass != "":
		u.User = url.UserPassword(c.DBUser, c.DBPass)
	case c.DBUser != "":
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

// Cutoff returns ExpiryCutoff as a UTC midnight
func (c *CMSConfig) Cutoff() (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, c.ExpiryCutoff, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiry_cutoff value: %s", c.ExpiryCutoff)
	}
	return t, nil
}

// Validate validates the configuration
func (c *CMSConfig) Validate() error {
	if c.DatabaseURL != "" {
		if _, err := db.ParseURL(c.DatabaseURL); err != nil {
			return fmt.Errorf("invalid database_url value: %w", err)
		}
	} else if _, err := db.EngineString(c.Engine); err != nil {
		return fmt.Errorf("invalid engine value: %s", c.Engine)
	}

	if !slices.Contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}
	if !slices.Contains(ValidOutputs, c.Output) {
		return fmt.Errorf("invalid output value: %s", c.Output)
	}
	if c.BannerWidth < 0 {
		return fmt.Errorf("invalid banner_width value: %d", c.BannerWidth)
	}
	if utf8.RuneCountInString(c.BannerFill) != 1 {
		return fmt.Errorf("invalid banner_fill value: %q", c.BannerFill)
	}
	if _, err := c.Cutoff(); err != nil {
		return err
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *CMSConfig) Attributes() []Attribute {
	pass := ""
	if c.DBPass != "" {
		pass = "********"
	}
	databaseURL := c.DatabaseURL
	if u, err := url.Parse(databaseURL); err == nil && databaseURL != "" {
		databaseURL = u.Redacted()
	}
	return []Attribute{
		{Name: "database_url", Value: databaseURL, Source: c.Source("database_url")},
		{Name: "engine", Value: c.Engine, Source: c.Source("engine")},
		{Name: "db_user", Value: c.DBUser, Source: c.Source("db_user")},
		{Name: "db_pass", Value: pass, Source: c.Source("db_pass")},
		{Name: "db_host", Value: c.DBHost, Source: c.Source("db_host")},
		{Name: "db_name", Value: c.DBName, Source: c.Source("db_name")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
		{Name: "output", Value: c.Output, Source: c.Source("output")},
		{Name: "banner_width", Value: strconv.Itoa(c.BannerWidth), Source: c.Source("banner_width")},
		{Name: "banner_fill", Value: c.BannerFill, Source: c.Source("banner_fill")},
		{Name: "fixtures_path", Value: c.FixturesPath, Source: c.Source("fixtures_path")},
		{Name: "expiry_cutoff", Value: c.ExpiryCutoff, Source: c.Source("expiry_cutoff")},
		{Name: "audit_log", Value: c.AuditLog, Source: c.Source("audit_log")},
	}
}

// FormatText returns a text representation of the configuration
func (c *CMSConfig) FormatText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Config file: %s\n\n", c.configFilePath)
	fmt.Fprintf(&sb, "%-20s %-40s %s\n", "NAME", "VALUE", "SOURCE")
	fmt.Fprintf(&sb, "%-20s %-40s %s\n", "----", "-----", "------")

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(&sb, "%-20s %-40s %s\n", attr.Name, value, attr.Source)
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *CMSConfig) FormatJSON() (string, error) {
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
