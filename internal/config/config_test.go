package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlfelps/bmi-calculator/internal/models"
)

// isolate points the config search at an empty directory so a stray
// .bmi.yaml on the machine running the tests cannot leak in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv(ConfigPathEnv, dir)
	t.Setenv("HOME", dir)
	t.Setenv("PORT", "")
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, ":8000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 70.0, cfg.Form.Weight)
	assert.Equal(t, 1.75, cfg.Form.Height)
	assert.Equal(t, models.HeightUnitMeters, cfg.Form.Unit)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	body := []byte(`server:
  host: 127.0.0.1
  port: 9001
form:
  weight: 82.5
  height: 180
  unit: cm
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bmi.yaml"), body, 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9001", cfg.Server.Addr())
	assert.Equal(t, 82.5, cfg.Form.Weight)
	assert.Equal(t, 180.0, cfg.Form.Height)
	assert.Equal(t, models.HeightUnitCentimeters, cfg.Form.Unit)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o644))

	v := New()
	v.Set("config", path)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BMI_SERVER_PORT", "9090")
	t.Setenv("BMI_FORM_UNIT", "centimeters")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, models.HeightUnitCentimeters, cfg.Form.Unit)
}

func TestLoad_HeightDefaultFollowsUnit(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		unit   models.HeightUnit
		height float64
	}{
		{"meters", map[string]string{"BMI_FORM_UNIT": "m"}, models.HeightUnitMeters, 1.75},
		{"centimeters", map[string]string{"BMI_FORM_UNIT": "cm"}, models.HeightUnitCentimeters, 175},
		{"explicit height kept", map[string]string{"BMI_FORM_UNIT": "cm", "BMI_FORM_HEIGHT": "182"}, models.HeightUnitCentimeters, 182},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(New())
			require.NoError(t, err)
			assert.Equal(t, tt.unit, cfg.Form.Unit)
			assert.Equal(t, tt.height, cfg.Form.Height)
		})
	}
}

func TestDefaultHeight(t *testing.T) {
	assert.Equal(t, 1.75, DefaultHeight(models.HeightUnitMeters))
	assert.Equal(t, 175.0, DefaultHeight(models.HeightUnitCentimeters))
}

func TestLoad_PortFallback(t *testing.T) {
	isolate(t)
	t.Setenv("PORT", "3000")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad unit", map[string]string{"BMI_FORM_UNIT": "feet"}},
		{"zero weight", map[string]string{"BMI_FORM_WEIGHT": "0"}},
		{"port out of range", map[string]string{"BMI_SERVER_PORT": "70000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(New())
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".bmi.yaml"), []byte("server: [unclosed\n"), 0o644))

	_, err := Load(New())
	assert.Error(t, err)
}
