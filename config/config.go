package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	Desk  DeskConfig  `yaml:"desk"`
	Kafka KafkaConfig `yaml:"kafka"`
	Log   LogConfig   `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DeskConfig struct {
	ItineraryID  string `yaml:"itinerary_id"`
	ScheduleID   string `yaml:"schedule_id"`
	ScheduleDate string `yaml:"schedule_date"`
	Seed         bool   `yaml:"seed"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	DomesticTopic      string   `yaml:"domestic_topic"`
	InternationalTopic string   `yaml:"international_topic"`
	BookingEventsTopic string   `yaml:"booking_events_topic"`
	GroupID            string   `yaml:"group_id"`
}

// Enabled reports whether events should leave the process at all.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080"},
		Desk: DeskConfig{
			ItineraryID:  "I123",
			ScheduleID:   "S123",
			ScheduleDate: "2023-06-15",
			Seed:         true,
		},
		Kafka: KafkaConfig{
			DomesticTopic:      "flights.domestic.notifications",
			InternationalTopic: "flights.international.notifications",
			BookingEventsTopic: "bookings.events",
			GroupID:            "airdesk-notifier",
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads the YAML file at path on top of Default().
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Resolve loads the file named by CONFIG_PATH (default config.yaml).
// A missing default file is not an error; an explicitly named one is.
func Resolve() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = "config.yaml"
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
