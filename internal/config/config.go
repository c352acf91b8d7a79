package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"wealthdesk/pkg/wealthdesk"
)

const defaultDBName = "wealthdesk.db"

// UserConfig is the optional on-disk configuration file. Environment
// variables take precedence over it.
type UserConfig struct {
	DBName  string `json:"db_name"`
	DataDir string `json:"data_dir"`
}

var runtimeDataDir string
var runtimePort = 8000

func SetRuntimeDataDir(dir string) {
	runtimeDataDir = dir
}

func SetRuntimePort(port int) {
	if port > 0 {
		runtimePort = port
	}
}

func GetRuntimePort() int {
	return runtimePort
}

func appConfigDir() (string, error) {
	if runtime.GOOS == "darwin" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", "WealthDesk"), nil
	}
	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = home
		}
		return filepath.Join(appData, "WealthDesk"), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "wealthdesk"), nil
	}
	return filepath.Join(configDir, "wealthdesk"), nil
}

func appConfigPath() (string, error) {
	dir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadUserConfig reads the config file, falling back to defaults when
// it is absent or unreadable.
func LoadUserConfig() UserConfig {
	defaults := UserConfig{DBName: defaultDBName}
	path, err := appConfigPath()
	if err != nil {
		return defaults
	}
	file, err := os.Open(path)
	if err != nil {
		return defaults
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&defaults); err != nil {
		return UserConfig{DBName: defaultDBName}
	}
	if defaults.DBName == "" {
		defaults.DBName = defaultDBName
	}
	return defaults
}

// SaveUserConfig writes the config file, creating its directory.
func SaveUserConfig(cfg UserConfig) error {
	path, err := appConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetDataDir resolves the data directory: runtime flag, then
// WEALTHDESK_DATA_DIR, then the config file, then the per-OS app dir.
// The directory is created if missing.
func GetDataDir() (string, error) {
	candidates := []string{runtimeDataDir, os.Getenv("WEALTHDESK_DATA_DIR"), LoadUserConfig().DataDir}
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		return dir, nil
	}
	defaultDir, err := appConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(defaultDir, 0o755); err != nil {
		return "", err
	}
	return defaultDir, nil
}

// GetDBPath resolves the SQLite database path. WEALTHDESK_DB_PATH wins
// over the data dir + configured name.
func GetDBPath() (string, error) {
	if envPath := os.Getenv("WEALTHDESK_DB_PATH"); envPath != "" {
		return envPath, nil
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	name := LoadUserConfig().DBName
	if name == "" {
		name = defaultDBName
	}
	return filepath.Join(dataDir, name), nil
}

// apiKeyEnvVars maps each provider to the env var holding its key.
var apiKeyEnvVars = map[string]string{
	wealthdesk.ProviderGemini:    "GEMINI_API_KEY",
	wealthdesk.ProviderOpenAI:    "OPENAI_API_KEY",
	wealthdesk.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// CompletionConfig turns persisted advisor settings into a runnable
// completion configuration. WEALTHDESK_AI_PROVIDER and
// WEALTHDESK_AI_MODEL override the stored choice; the API key always
// comes from the provider's environment variable and is never stored.
func CompletionConfig(settings wealthdesk.AISettings) wealthdesk.CompletionConfig {
	provider := strings.TrimSpace(os.Getenv("WEALTHDESK_AI_PROVIDER"))
	if provider == "" {
		provider = settings.Provider
	}
	provider = strings.ToLower(provider)

	model := strings.TrimSpace(os.Getenv("WEALTHDESK_AI_MODEL"))
	if model == "" {
		model = settings.Model
	}

	return wealthdesk.CompletionConfig{
		Provider: provider,
		APIKey:   strings.TrimSpace(os.Getenv(apiKeyEnvVars[provider])),
		Model:    model,
	}
}
