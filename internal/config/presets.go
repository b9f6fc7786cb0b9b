package config

var Presets = map[string]*Config{
	"smoke": {
		TimePeriod: 1.0, Dt: 0.1, Bodies: 16,
		InitialMass: 10000, Softening: 100, VelScale: 100, Workers: 2,
	},
	"galaxy": {
		TimePeriod: 100.0, Dt: 0.01, Bodies: 1000,
		InitialMass: 10000, Softening: 100, VelScale: 100, Workers: 4,
	},
	"cluster": {
		TimePeriod: 50.0, Dt: 0.05, Bodies: 400,
		InitialMass: 50000, Softening: 50, VelScale: 20, Workers: 8,
	},
	"cold": {
		TimePeriod: 20.0, Dt: 0.02, Bodies: 200,
		InitialMass: 10000, Softening: 100, VelScale: 0, Workers: 4,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
