package config

var Presets = map[string]map[string]*Config{
	"lts": {
		"base": {
			Reactor: "lts", Integrator: "rk45", WMax: 3000, Points: 3000,
			Temp: 497.15, Pressure: 2.05e6,
			Inlet: InletConfig{CO: 291.4, H2O: 5441.7, CO2: 1604.2, H2: 5015.6},
		},
		"steam-rich": {
			Reactor: "lts", Integrator: "rk45", WMax: 3000, Points: 3000,
			Temp: 497.15, Pressure: 2.05e6,
			Inlet: InletConfig{CO: 291.4, H2O: 8000.0, CO2: 1604.2, H2: 5015.6},
		},
		"short-bed": {
			Reactor: "lts", Integrator: "rk45", WMax: 500, Points: 500,
			Temp: 497.15, Pressure: 2.05e6,
			Inlet: InletConfig{CO: 291.4, H2O: 5441.7, CO2: 1604.2, H2: 5015.6},
		},
	},
	"hts": {
		"base": {
			Reactor: "hts", Integrator: "rk45", WMax: 3000, Points: 3000,
			Temp: 623.15, Pressure: 2.05e6,
			Inlet: InletConfig{CO: 291.4, H2O: 5441.7, CO2: 1604.2, H2: 5015.6},
		},
		"hot": {
			Reactor: "hts", Integrator: "rk45", WMax: 3000, Points: 3000,
			Temp: 673.15, Pressure: 2.05e6,
			Inlet: InletConfig{CO: 291.4, H2O: 5441.7, CO2: 1604.2, H2: 5015.6},
		},
	},
}

func GetPreset(reactor, preset string) *Config {
	reactorPresets, ok := Presets[reactor]
	if !ok {
		return nil
	}
	cfg, ok := reactorPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(reactor string) []string {
	reactorPresets, ok := Presets[reactor]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(reactorPresets))
	for name := range reactorPresets {
		names = append(names, name)
	}
	return names
}
