package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTimePeriod  = 10.0
	DefaultDt          = 0.1
	DefaultBodies      = 100
	DefaultInitialMass = 10000.0
	DefaultSoftening   = 100.0
	DefaultVelScale    = 100.0
	DefaultWorkers     = 4
)

type Config struct {
	TimePeriod  float64 `yaml:"time_period"`
	Dt          float64 `yaml:"dt"`
	Bodies      int     `yaml:"bodies"`
	InitialMass float64 `yaml:"initial_mass"`
	Softening   float64 `yaml:"softening"`
	VelScale    float64 `yaml:"vel_scale"`
	Workers     int     `yaml:"workers"`
	Seed        int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		TimePeriod:  DefaultTimePeriod,
		Dt:          DefaultDt,
		Bodies:      DefaultBodies,
		InitialMass: DefaultInitialMass,
		Softening:   DefaultSoftening,
		VelScale:    DefaultVelScale,
		Workers:     DefaultWorkers,
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
