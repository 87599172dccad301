package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains application configuration parameters, loaded from
// environment variables (a .env file is autoloaded in main).
type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	DataDir string `env:"DATA_DIR" envDefault:"./data"`
	DBURL   string `env:"DB_URL" envDefault:"seatsync.db"`
	Seat    Seat   `envPrefix:"SEAT_"`
	Line    Line   `envPrefix:"LINE_"`
}

// Seat contains seat service parameters, including the daily time of day at
// which next-day reservations open (used by the reserve-open alert).
type Seat struct {
	BaseURL    string `env:"BASE_URL" envDefault:"https://seat.lib.example.edu/rest/v2"`
	OpenHour   int    `env:"OPEN_HOUR" envDefault:"22"`
	OpenMinute int    `env:"OPEN_MINUTE" envDefault:"50"`
}

// Line contains LINE push channel credentials. Optional: when empty, fired
// alerts are logged instead of pushed.
type Line struct {
	ChannelSecret string `env:"CHANNEL_SECRET"`
	ChannelToken  string `env:"CHANNEL_ACCESS_TOKEN"`
	To            string `env:"TO"` // Push target user ID
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
