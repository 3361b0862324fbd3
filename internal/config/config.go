package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Nominal LTS operating point; the compiled-in defaults for every run.
const (
	DefaultWMax      = 3000.0
	DefaultPoints    = 3000
	DefaultTolerance = 1e-6
	DefaultTemp      = 497.15
	DefaultPressure  = 2.05e6

	DefaultInletCO  = 291.4
	DefaultInletH2O = 5441.7
	DefaultInletCO2 = 1604.2
	DefaultInletH2  = 5015.6
)

type Config struct {
	Reactor    string      `yaml:"reactor"`
	Integrator string      `yaml:"integrator"`
	WMax       float64     `yaml:"w_max"`
	Points     int         `yaml:"points"`
	Tolerance  float64     `yaml:"tolerance"`
	Temp       float64     `yaml:"temperature"`
	Pressure   float64     `yaml:"pressure"`
	Inlet      InletConfig `yaml:"inlet"`
}

// InletConfig is the feed composition, mol/s per species.
type InletConfig struct {
	CO  float64 `yaml:"co"`
	H2O float64 `yaml:"h2o"`
	CO2 float64 `yaml:"co2"`
	H2  float64 `yaml:"h2"`
}

func DefaultConfig() *Config {
	return &Config{
		Reactor:    "lts",
		Integrator: "rk45",
		WMax:       DefaultWMax,
		Points:     DefaultPoints,
		Tolerance:  DefaultTolerance,
		Temp:       DefaultTemp,
		Pressure:   DefaultPressure,
		Inlet: InletConfig{
			CO:  DefaultInletCO,
			H2O: DefaultInletH2O,
			CO2: DefaultInletCO2,
			H2:  DefaultInletH2,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GetInitState returns the feed as a state vector in species order.
func (c *Config) GetInitState() []float64 {
	return []float64{c.Inlet.CO, c.Inlet.H2O, c.Inlet.CO2, c.Inlet.H2}
}

// Validate rejects configurations the integration driver cannot run.
func (c *Config) Validate() error {
	if c.WMax <= 0 {
		return fmt.Errorf("w_max must be positive, got %f", c.WMax)
	}
	if c.Points < 2 {
		return fmt.Errorf("points must be at least 2, got %d", c.Points)
	}
	if c.Temp <= 0 {
		return fmt.Errorf("temperature must be positive, got %f", c.Temp)
	}
	if c.Pressure <= 0 {
		return fmt.Errorf("pressure must be positive, got %f", c.Pressure)
	}
	for _, f := range c.GetInitState() {
		if f <= 0 {
			return fmt.Errorf("inlet flows must be positive, got %v", c.GetInitState())
		}
	}
	return nil
}
