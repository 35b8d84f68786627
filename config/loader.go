package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. An empty
// path falls back to config.yml in the working directory.
func LoadAppConfig(path string) error {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.BusTime); err != nil {
		return err
	}
	for _, d := range cfg.Departures {
		if err := v.Struct(d); err != nil {
			return err
		}
	}
	if len(cfg.Departures) == 0 && cfg.BusTime.MonitoringRef == "" {
		return errors.New("config: either bustime.monitoring_ref or departures[] is required")
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 8080
	}
	if Config.BusTime.TimeoutMS == 0 {
		Config.BusTime.TimeoutMS = 10000
	}
	if Config.BusTime.RefreshIntervalS == 0 {
		Config.BusTime.RefreshIntervalS = 60
	}
	return nil
}

// ResolveDepartures returns the monitored stop list for cfg. With no
// departures configured, the top-level monitoring_ref becomes a single
// default departure, so single-stop setups are just a list of length one.
// A departure without its own route inherits line_ref.
func ResolveDepartures(cfg AppConfig) []Departure {
	if len(cfg.Departures) == 0 {
		return []Departure{{
			Name:          "MTA Bus Arrival",
			MonitoringRef: cfg.BusTime.MonitoringRef,
			Route:         cfg.BusTime.LineRef,
		}}
	}
	out := make([]Departure, 0, len(cfg.Departures))
	for _, d := range cfg.Departures {
		if d.Route == "" {
			d.Route = cfg.BusTime.LineRef
		}
		out = append(out, d)
	}
	return out
}
