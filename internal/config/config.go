package config

import (
	"fmt"
	"os"
	"strconv"

	"inversure_flips/internal/domain/engine"

	_ "github.com/joho/godotenv/autoload"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config holds the deployment-tunable calculation policy.
type Config struct {
	Tasas struct {
		Notaria       float64 `yaml:"notaria"`
		NotariaSuelo  float64 `yaml:"notaria_suelo"`
		Registro      float64 `yaml:"registro"`
		RegistroSuelo float64 `yaml:"registro_suelo"`
		ITP           float64 `yaml:"itp"`
		Gestion       float64 `yaml:"gestion"`
	} `yaml:"tasas"`
	Viabilidad struct {
		ROIMinimo      float64 `yaml:"roi_minimo"`
		BeneficioSuelo float64 `yaml:"beneficio_suelo"`
		Dual           bool    `yaml:"dual"`
	} `yaml:"viabilidad"`
	PrecioMinimoConSueloAbsoluto bool `yaml:"precio_minimo_con_suelo_absoluto"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v, ok := envFloat("FLIPS_ROI_MINIMO"); ok {
		cfg.Viabilidad.ROIMinimo = v
	}
	if v, ok := envFloat("FLIPS_BENEFICIO_SUELO"); ok {
		cfg.Viabilidad.BeneficioSuelo = v
	}
	if v := os.Getenv("FLIPS_VIABILIDAD_DUAL"); v != "" {
		cfg.Viabilidad.Dual = v == "1" || v == "true"
	}
	if v, ok := envFloat("FLIPS_TASA_ITP"); ok {
		cfg.Tasas.ITP = v
	}
	if v, ok := envFloat("FLIPS_TASA_GESTION"); ok {
		cfg.Tasas.Gestion = v
	}

	return cfg, nil
}

// Policy converts the config into the engine's policy struct.
func (c *Config) Policy() engine.Policy {
	return engine.Policy{
		NotariaRate:                  decimal.NewFromFloat(c.Tasas.Notaria),
		NotariaSuelo:                 decimal.NewFromFloat(c.Tasas.NotariaSuelo),
		RegistroRate:                 decimal.NewFromFloat(c.Tasas.Registro),
		RegistroSuelo:                decimal.NewFromFloat(c.Tasas.RegistroSuelo),
		ITPRate:                      decimal.NewFromFloat(c.Tasas.ITP),
		GestionRate:                  decimal.NewFromFloat(c.Tasas.Gestion),
		ROIMinimo:                    decimal.NewFromFloat(c.Viabilidad.ROIMinimo),
		BeneficioSuelo:               decimal.NewFromFloat(c.Viabilidad.BeneficioSuelo),
		ViabilidadDual:               c.Viabilidad.Dual,
		PrecioMinimoConSueloAbsoluto: c.PrecioMinimoConSueloAbsoluto,
	}
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Tasas.Notaria = 0.002
	cfg.Tasas.NotariaSuelo = 500
	cfg.Tasas.Registro = 0.002
	cfg.Tasas.RegistroSuelo = 500
	cfg.Tasas.ITP = 0.02
	cfg.Tasas.Gestion = 0.05
	cfg.Viabilidad.ROIMinimo = 15
	cfg.Viabilidad.BeneficioSuelo = 30000
	return cfg
}

func envFloat(key string) (float64, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
