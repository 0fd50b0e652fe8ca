package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"todoview/pkg/keymaps"
)

// Config holds the application configuration
type Config struct {
	APIURL     string            `json:"api_url"`
	Limit      int               `json:"limit"`
	StylesFile string            `json:"styles_file"`
	KeyMap     map[string]string `json:"keymap"`
}

// Styles holds the application colors and styling information
type Styles struct {
	// UI element colors
	BorderColor string `json:"border_color"`
	AccentColor string `json:"accent_color"`

	// Text colors
	NormalTextColor   string `json:"normal_text_color"`
	SelectedTextColor string `json:"selected_text_color"`
	SelectedBgColor   string `json:"selected_bg_color"`
	ErrorColor        string `json:"error_color"`
	CompletedColor    string `json:"completed_color"`
}

// Load loads the application configuration, creating a default config
// file on first run. An empty configPath means the default location
// under ~/.config/todoview.
func Load(configPath, defaultURL string, defaultLimit int) (Config, Styles, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, Styles{}, err
	}

	configDir := filepath.Join(homeDir, ".config", "todoview")

	config := Config{
		APIURL:     defaultURL,
		Limit:      defaultLimit,
		StylesFile: filepath.Join(configDir, "styles.json"),
		KeyMap:     keymaps.GetDefaultKeyMappings(),
	}

	// Setup viper
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(configDir)
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, Styles{}, err
		}
		// Config file not found, create default config
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return config, Styles{}, err
		}
		viper.Set("api_url", config.APIURL)
		viper.Set("limit", config.Limit)
		viper.Set("styles_file", config.StylesFile)
		viper.Set("keymap", config.KeyMap)
		if err := viper.WriteConfigAs(filepath.Join(configDir, "config.json")); err != nil {
			return config, Styles{}, err
		}
	}

	if viper.IsSet("api_url") {
		config.APIURL = viper.GetString("api_url")
	}
	if viper.IsSet("limit") {
		config.Limit = viper.GetInt("limit")
	}
	if viper.IsSet("styles_file") {
		config.StylesFile = viper.GetString("styles_file")
	}
	if viper.IsSet("keymap") {
		config.KeyMap = viper.GetStringMapString("keymap")
	}

	// Now load the styles file
	styles, err := loadStyles(config.StylesFile)
	if err != nil {
		return config, styles, err
	}

	return config, styles, nil
}

// DefaultStyles returns the built-in color scheme
func DefaultStyles() Styles {
	return Styles{
		BorderColor:       "240",
		AccentColor:       "205",
		NormalTextColor:   "86",
		SelectedTextColor: "229",
		SelectedBgColor:   "57",
		ErrorColor:        "9",
		CompletedColor:    "242",
	}
}

// loadStyles loads the application styles from the specified path,
// creating the file with defaults if it does not exist.
func loadStyles(stylesPath string) (Styles, error) {
	defaultStyles := DefaultStyles()

	stylesData, err := os.ReadFile(stylesPath)
	if err != nil {
		if os.IsNotExist(err) {
			stylesDir := filepath.Dir(stylesPath)
			if err := os.MkdirAll(stylesDir, 0755); err != nil {
				return defaultStyles, err
			}

			stylesData, err = json.MarshalIndent(defaultStyles, "", "  ")
			if err != nil {
				return defaultStyles, err
			}

			if err := os.WriteFile(stylesPath, stylesData, 0644); err != nil {
				return defaultStyles, err
			}

			return defaultStyles, nil
		}
		return defaultStyles, err
	}

	var loadedStyles Styles
	if err := json.Unmarshal(stylesData, &loadedStyles); err != nil {
		return defaultStyles, err
	}

	return loadedStyles, nil
}
