package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	ListenAddr          string `json:"listenAddr"`
	ArticleAPIBaseURL   string `json:"articleApiBaseUrl"`
	RequestTimeoutMs    int    `json:"requestTimeoutMs"`
	DebounceWindowMs    int    `json:"debounceWindowMs"`
	AuthRedirectDelayMs int    `json:"authRedirectDelayMs"`
	JournalPath         string `json:"journalPath"`
	CameraHeadless      bool   `json:"cameraHeadless"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./scanstation_config.json"

func applyDefaults(c Config) Config {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.ArticleAPIBaseURL == "" {
		c.ArticleAPIBaseURL = "http://localhost:3000"
	}
	if c.RequestTimeoutMs == 0 {
		c.RequestTimeoutMs = 5000
	}
	if c.DebounceWindowMs == 0 {
		c.DebounceWindowMs = 2000
	}
	if c.AuthRedirectDelayMs == 0 {
		c.AuthRedirectDelayMs = 2000
	}
	if c.JournalPath == "" {
		c.JournalPath = "./scanstation.db"
	}
	return c
}

func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = applyDefaults(Config{})
			return cfg, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	cfg = applyDefaults(tempCfg)

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	newCfg = applyDefaults(newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
