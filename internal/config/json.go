package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConfig mirrors [Config] with json tags for the optional config file.
// Kept as a separate type so the file format can evolve independently of
// the environment/flag surface.
type JSONConfig struct {
	App struct {
		StrictExit bool   `json:"strict_exit"`
		Clipboard  bool   `json:"clipboard"`
		LogLevel   string `json:"log_level"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		App: App{
			StrictExit: jsonCfg.App.StrictExit,
			Clipboard:  jsonCfg.App.Clipboard,
			LogLevel:   jsonCfg.App.LogLevel,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
