package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inEmptyDir runs the test from a fresh directory so no stray dbsynth.yaml
// or .env is picked up
func inEmptyDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	inEmptyDir(t)

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, uint64(10), cfg.SampleSize)
	assert.Equal(t, 0.5, cfg.Seed)
	assert.Equal(t, "json", cfg.Format)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Tables)
}

func TestLoadConfigFile(t *testing.T) {
	dir := inEmptyDir(t)

	content := `database_url: postgres://localhost/shop
schema: sales
tables:
  - users
  - orders
sample_size: 50
seed: -0.25
strict_references: true
output_dir: synth/shop
format: YAML
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dbsynth.yaml"), []byte(content), 0644))

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/shop", cfg.DatabaseURL)
	assert.Equal(t, "sales", cfg.Schema)
	assert.Equal(t, []string{"users", "orders"}, cfg.Tables)
	assert.Equal(t, uint64(50), cfg.SampleSize)
	assert.Equal(t, -0.25, cfg.Seed)
	assert.True(t, cfg.StrictReferences)
	assert.Equal(t, "synth/shop", cfg.OutputDir)
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := inEmptyDir(t)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample_size: 50\nformat: text\n"), 0644))

	t.Setenv("DBSYNTH_SAMPLE_SIZE", "25")
	t.Setenv("DBSYNTH_EXCLUDE", "audit_log,schema_migrations")

	v := viper.New()
	require.NoError(t, Init(v, path))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, uint64(25), cfg.SampleSize)
	assert.Equal(t, []string{"audit_log", "schema_migrations"}, cfg.Exclude)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoadDotEnv(t *testing.T) {
	dir := inEmptyDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DATABASE_URL=sqlite://shop.db\n"), 0644))

	v := viper.New()
	require.NoError(t, Init(v, ""))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "sqlite://shop.db", cfg.DatabaseURL)
}

func TestInitMissingExplicitFile(t *testing.T) {
	dir := inEmptyDir(t)

	err := Init(viper.New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Format: "json", Seed: 0.5}},
		{name: "unknown format", cfg: Config{Format: "toml"}, wantErr: true},
		{name: "seed out of range", cfg: Config{Format: "json", Seed: 1.5}, wantErr: true},
		{name: "two outputs", cfg: Config{Format: "json", Output: "ns.json", OutputDir: "ns"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
