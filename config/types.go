package config

// ServerConfig contains the HTTP read-surface configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// BusTimeConfig contains the MTA Bus Time feed configuration
type BusTimeConfig struct {
	BaseURL          string `yaml:"baseURL" validate:"omitempty,url"`
	APIKey           string `yaml:"api_key" validate:"required"`
	OperatorRef      string `yaml:"operator_ref" validate:"required"`
	LineRef          string `yaml:"line_ref"`
	MonitoringRef    string `yaml:"monitoring_ref"`
	TimeoutMS        int    `yaml:"timeoutMS" validate:"gte=0"`
	RefreshIntervalS int    `yaml:"refreshIntervalS" validate:"gte=0"`
}

// Departure is one monitored stop; route, when set, narrows the fetch to a
// single line and takes precedence over the top-level line_ref default.
type Departure struct {
	Name          string `yaml:"name" validate:"required"`
	MonitoringRef string `yaml:"monitoring_ref" validate:"required"`
	Route         string `yaml:"route"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig  `yaml:"server"`
	BusTime    BusTimeConfig `yaml:"bustime"`
	Departures []Departure   `yaml:"departures"`
}
