package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/patrones/internal/observability/logger"
)

type Config struct {
	// Bloque app (opcional en YAML). Si no está, queda "dev".
	App struct {
		// dev | prod
		Env string `yaml:"app_env"`
	} `yaml:"app"`

	Log struct {
		// debug | info | warning | error
		Level string `yaml:"level"`
		// File: tee opcional de los registros a un archivo (además de stdout).
		File string `yaml:"file"`
		// Metrics habilita los contadores Prometheus del logger.
		Metrics bool `yaml:"metrics"`
		// MetricsAddr expone /metrics en esa dirección si no está vacío.
		MetricsAddr string `yaml:"metrics_addr"`
	} `yaml:"log"`

	Run struct {
		// Parallel: workers para `run --all`. 1 = secuencial.
		Parallel int `yaml:"parallel"`
	} `yaml:"run"`
}

// Load lee el YAML en path (si path es "" o no existe, arranca de defaults),
// aplica defaults, pisa con variables de entorno y valida.
func Load(path string) (*Config, error) {
	var c Config

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, fmt.Errorf("config: parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// sin archivo: defaults + env alcanzan
		default:
			return nil, err
		}
	}

	// sane defaults
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "debug"
	}
	if c.Run.Parallel == 0 {
		c.Run.Parallel = 1
	}

	// Overrides por env
	c.applyEnvOverrides()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Level retorna el umbral ya parseado. Validate garantiza que no falla.
func (c *Config) Level() logger.Level {
	lvl, _ := logger.ParseLevel(c.Log.Level)
	return lvl
}

// Validate chequea los valores críticos.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Run.Parallel < 1 {
		return fmt.Errorf("config: run.parallel debe ser >= 1 (got %d)", c.Run.Parallel)
	}
	return nil
}

// applyEnvOverrides: pisa el YAML con variables de entorno.
func (c *Config) applyEnvOverrides() {
	// APP
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}

	// LOG
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := getEnvStr("LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := getEnvBool("LOG_METRICS"); ok {
		c.Log.Metrics = v
	}
	if v, ok := getEnvStr("LOG_METRICS_ADDR"); ok {
		c.Log.MetricsAddr = v
	}

	// RUN
	if v, ok := getEnvInt("RUN_PARALLEL"); ok {
		c.Run.Parallel = v
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}
