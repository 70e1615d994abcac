package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envAttributes {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("CMS_CONFIG_PATH", t.TempDir())
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv("CMS_CONFIG_PATH", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "mysql", cfg.Engine)
	assert.Equal(t, "cms_go", cfg.DBName)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 100, cfg.BannerWidth)
	assert.Equal(t, "=", cfg.BannerFill)
	for _, attr := range cfg.Attributes() {
		assert.Equal(t, "default", attr.Source, attr.Name)
	}

	cutoff, err := cfg.Cutoff()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), cutoff)
}

func TestLoadFileThenEnvironment(t *testing.T) {
	clearEnv(t)
	dir := writeConfigFile(t, `
engine: postgres
db_host: db.local
db_name: cms_file
banner_width: 80
output: yaml
`)
	t.Setenv("DB_NAME", "cms_env")
	t.Setenv("CMS_BANNER_FILL", "-")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.ConfigFilePath())

	assert.Equal(t, "postgres", cfg.Engine)
	assert.Equal(t, "file", cfg.Source("engine"))
	assert.Equal(t, 80, cfg.BannerWidth)
	assert.Equal(t, "file", cfg.Source("banner_width"))
	assert.Equal(t, "cms_env", cfg.DBName)
	assert.Equal(t, "environment", cfg.Source("db_name"))
	assert.Equal(t, "-", cfg.BannerFill)
	assert.Equal(t, "environment", cfg.Source("banner_fill"))
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "default", cfg.Source("log_level"))
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	writeConfigFile(t, "engine: [postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestLoadInvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("CMS_BANNER_WIDTH", "wide")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env")
}

func TestURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  CMSConfig
		want string
	}{
		{
			name: "database url wins",
			cfg:  CMSConfig{DatabaseURL: "postgres://a@b/c", Engine: "mysql", DBName: "cms_go"},
			want: "postgres://a@b/c",
		},
		{
			name: "mysql from parts",
			cfg:  CMSConfig{Engine: "mysql", DBUser: "cms", DBPass: "p@ss", DBHost: "db:3306", DBName: "cms_go"},
			want: "mysql://cms:p%40ss@db:3306/cms_go",
		},
		{
			name: "user without password",
			cfg:  CMSConfig{Engine: "postgres", DBUser: "cms", DBHost: "db", DBName: "cms_go"},
			want: "postgres://cms@db/cms_go",
		},
		{
			name: "sqlite",
			cfg:  CMSConfig{Engine: "sqlite", DBName: ":memory:"},
			want: "sqlite://:memory:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.URL())
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *CMSConfig { return newDefault() }

	tests := []struct {
		name    string
		mutate  func(*CMSConfig)
		wantErr string
	}{
		{"defaults", func(*CMSConfig) {}, ""},
		{"engine", func(c *CMSConfig) { c.Engine = "oracle" }, "invalid engine value"},
		{"database url", func(c *CMSConfig) { c.DatabaseURL = "oracle://x/y" }, "invalid database_url value"},
		{"log level", func(c *CMSConfig) { c.LogLevel = "loud" }, "invalid log_level value"},
		{"output", func(c *CMSConfig) { c.Output = "pdf" }, "invalid output value"},
		{"banner width", func(c *CMSConfig) { c.BannerWidth = -1 }, "invalid banner_width value"},
		{"banner fill", func(c *CMSConfig) { c.BannerFill = "==" }, "invalid banner_fill value"},
		{"cutoff", func(c *CMSConfig) { c.ExpiryCutoff = "1/11/2023" }, "invalid expiry_cutoff value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestAttributesMaskSecrets(t *testing.T) {
	cfg := newDefault()
	cfg.DBPass = "hunter2"
	cfg.DatabaseURL = "postgres://cms:hunter2@db/cms_go"

	text := cfg.FormatText()
	assert.NotContains(t, text, "hunter2")
	assert.Contains(t, text, "db_pass")

	out, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.NotContains(t, out, "hunter2")
	assert.True(t, strings.Contains(out, `"attributes"`))
}
