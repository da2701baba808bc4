package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the -config file.
type StructuredJSONConfig struct {
	Square struct {
		AccessToken string   `json:"access_token"`
		Environment string   `json:"environment"`
		Version     string   `json:"version"`
		BaseURL     string   `json:"base_url"`
		Timeout     Duration `json:"timeout"`
		MaxRetries  int      `json:"max_retries"`
		LocationID  string   `json:"location_id"`
	} `json:"square,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Workers struct {
		PendingSweepInterval Duration `json:"pending_sweep_interval"`
		PendingMaxAge        Duration `json:"pending_max_age"`
	} `json:"workers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Square: Square{
			AccessToken: jsonCfg.Square.AccessToken,
			Environment: jsonCfg.Square.Environment,
			Version:     jsonCfg.Square.Version,
			BaseURL:     jsonCfg.Square.BaseURL,
			Timeout:     time.Duration(jsonCfg.Square.Timeout),
			MaxRetries:  jsonCfg.Square.MaxRetries,
			LocationID:  jsonCfg.Square.LocationID,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Workers: Workers{
			PendingSweepInterval: time.Duration(jsonCfg.Workers.PendingSweepInterval),
			PendingMaxAge:        time.Duration(jsonCfg.Workers.PendingMaxAge),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
