package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	Storage struct {
		DSN     string `json:"dsn"`
		SlotKey string `json:"slot_key"`
	} `json:"storage,omitempty"`

	Media struct {
		MaxFileSize ByteSize `json:"max_file_size"`
		AllowVideo  bool     `json:"allow_video"`
		Concurrency int      `json:"concurrency"`
	} `json:"media,omitempty"`

	Editor struct {
		MaxSuggestions int      `json:"max_suggestions"`
		BlurDelay      Duration `json:"blur_delay"`
	} `json:"editor,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`

	Export struct {
		Dir string `json:"dir"`
	} `json:"export,omitempty"`
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
		Storage: Storage{
			DSN:     jsonCfg.Storage.DSN,
			SlotKey: jsonCfg.Storage.SlotKey,
		},
		Media: Media{
			MaxFileSize: jsonCfg.Media.MaxFileSize,
			AllowVideo:  jsonCfg.Media.AllowVideo,
			Concurrency: jsonCfg.Media.Concurrency,
		},
		Editor: Editor{
			MaxSuggestions: jsonCfg.Editor.MaxSuggestions,
			BlurDelay:      time.Duration(jsonCfg.Editor.BlurDelay),
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
		},
		Export: Export{
			Dir: jsonCfg.Export.Dir,
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
