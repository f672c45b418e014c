package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Apollo struct {
		AppID           string     `json:"app_id"`
		ClusterName     string     `json:"cluster"`
		ConfigServerURL string     `json:"config_server_url"`
		Namespaces      StringList `json:"namespaces"`
		ClientIP        string     `json:"client_ip"`
		IsCache         *bool      `json:"cache"`
		ReleaseKey      string     `json:"release_key"`
	} `json:"apollo,omitempty"`

	EnvFile struct {
		Create      *bool  `json:"create"`
		Name        string `json:"name"`
		SetEnv      *bool  `json:"set_env"`
		BeforeClear *bool  `json:"before_clear"`
		BaseDir     string `json:"base_dir"`
	} `json:"env_file,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
		Apollo: Apollo{
			AppID:           jsonCfg.Apollo.AppID,
			ClusterName:     jsonCfg.Apollo.ClusterName,
			ConfigServerURL: jsonCfg.Apollo.ConfigServerURL,
			Namespaces:      []string(jsonCfg.Apollo.Namespaces),
			ClientIP:        jsonCfg.Apollo.ClientIP,
			IsCache:         jsonCfg.Apollo.IsCache,
			ReleaseKey:      jsonCfg.Apollo.ReleaseKey,
		},
		EnvFile: EnvFile{
			Create:      jsonCfg.EnvFile.Create,
			Name:        jsonCfg.EnvFile.Name,
			SetEnv:      jsonCfg.EnvFile.SetEnv,
			BeforeClear: jsonCfg.EnvFile.BeforeClear,
			BaseDir:     jsonCfg.EnvFile.BaseDir,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// StringList accepts either a single JSON string or an array of strings.
// A single string becomes a one-element list.
type StringList []string

func (s *StringList) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		if single == "" {
			*s = nil
			return nil
		}
		*s = StringList{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("namespaces must be a string or an array of strings: %w", err)
	}
	*s = list
	return nil
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
