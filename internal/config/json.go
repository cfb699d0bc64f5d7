// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are written as strings such as "15m" or "10s".
type StructuredJSONConfig struct {
	Server struct {
		Port            int      `json:"port"`
		Host            string   `json:"host"`
		Environment     string   `json:"environment"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		LocalOrigin  string `json:"local_origin"`
		DeploySuffix string `json:"deploy_suffix"`
	} `json:"cors,omitempty"`

	RateLimit struct {
		Window      Duration `json:"window"`
		MaxRequests int      `json:"max_requests"`
	} `json:"rate_limit,omitempty"`

	Log struct {
		Level        string `json:"level"`
		ErrorFile    string `json:"error_file"`
		CombinedFile string `json:"combined_file"`
	} `json:"log,omitempty"`

	Static struct {
		Dir string `json:"dir"`
	} `json:"static,omitempty"`

	Realtime struct {
		Path           string `json:"path"`
		MaxMessageSize int64  `json:"max_message_size"`
	} `json:"realtime,omitempty"`
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
		Server: Server{
			Port:            jsonCfg.Server.Port,
			Host:            jsonCfg.Server.Host,
			Environment:     jsonCfg.Server.Environment,
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		CORS: CORS{
			LocalOrigin:  jsonCfg.CORS.LocalOrigin,
			DeploySuffix: jsonCfg.CORS.DeploySuffix,
		},
		RateLimit: RateLimit{
			Window:      time.Duration(jsonCfg.RateLimit.Window),
			MaxRequests: jsonCfg.RateLimit.MaxRequests,
		},
		Log: Log{
			Level:        jsonCfg.Log.Level,
			ErrorFile:    jsonCfg.Log.ErrorFile,
			CombinedFile: jsonCfg.Log.CombinedFile,
		},
		Static: Static{
			Dir: jsonCfg.Static.Dir,
		},
		Realtime: Realtime{
			Path:           jsonCfg.Realtime.Path,
			MaxMessageSize: jsonCfg.Realtime.MaxMessageSize,
		},
		JSONFilePath: "",
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
