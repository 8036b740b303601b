package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the shape of the optional JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		SessionSecret    string   `json:"session_secret"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir         string `json:"data_dir"`
		ExternalDataDir string `json:"data_dir_external"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Instances struct {
		MaxUsers           int        `json:"max_users"`
		DisableContainers  bool       `json:"disable_containers"`
		DisableFileBrowser bool       `json:"disable_file_browser"`
		ComposeCommand     string     `json:"compose_command"`
		CommandTimeout     Duration   `json:"command_timeout"`
		SyncImage          string     `json:"sync_image"`
		FileBrowserImage   string     `json:"file_browser_image"`
		ConfigWaitSchedule []Duration `json:"config_wait_schedule"`
		RestartDelay       Duration   `json:"restart_delay"`
		BootConcurrency    int        `json:"boot_concurrency"`
	} `json:"instances,omitempty"`

	Gateway struct {
		UpstreamHost    string `json:"upstream_host"`
		LoginPath       string `json:"login_path"`
		ErrorPath       string `json:"error_path"`
		SecureCookie    bool   `json:"secure_cookie"`
		MaxBufferedBody int64  `json:"max_buffered_body"`
	} `json:"gateway,omitempty"`
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

	var schedule []time.Duration
	for _, d := range jsonCfg.Instances.ConfigWaitSchedule {
		schedule = append(schedule, time.Duration(d))
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret:    jsonCfg.App.SessionSecret,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DataDir:         jsonCfg.Storage.DataDir,
			ExternalDataDir: jsonCfg.Storage.ExternalDataDir,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Instances: Instances{
			MaxUsers:           jsonCfg.Instances.MaxUsers,
			DisableContainers:  jsonCfg.Instances.DisableContainers,
			DisableFileBrowser: jsonCfg.Instances.DisableFileBrowser,
			ComposeCommand:     jsonCfg.Instances.ComposeCommand,
			CommandTimeout:     time.Duration(jsonCfg.Instances.CommandTimeout),
			SyncImage:          jsonCfg.Instances.SyncImage,
			FileBrowserImage:   jsonCfg.Instances.FileBrowserImage,
			ConfigWaitSchedule: schedule,
			RestartDelay:       time.Duration(jsonCfg.Instances.RestartDelay),
			BootConcurrency:    jsonCfg.Instances.BootConcurrency,
		},
		Gateway: Gateway{
			UpstreamHost:    jsonCfg.Gateway.UpstreamHost,
			LoginPath:       jsonCfg.Gateway.LoginPath,
			ErrorPath:       jsonCfg.Gateway.ErrorPath,
			SecureCookie:    jsonCfg.Gateway.SecureCookie,
			MaxBufferedBody: jsonCfg.Gateway.MaxBufferedBody,
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
