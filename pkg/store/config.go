package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultThemes is the stock tag cycle used by the filter control when the
// config does not override it.
var DefaultThemes = []string{
	"수면·환경",
	"몸·에너지",
	"정신·태도",
	"사회·관계",
	"재정·소비",
	"창의·학습",
	"정체성·자기표현",
}

type Config interface {
	BasePath() string
	Themes() []string
}

func LoadConfig() (Config, error) {
	viper.SetDefault("path", defaultBasePath())
	viper.SetDefault("themes", DefaultThemes)
	viper.SetConfigName(".habit100") // .yaml is implicit
	viper.SetEnvPrefix("HABIT100")
	viper.AutomaticEnv()

	if override := os.Getenv("HABIT100_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	themes := viper.GetStringSlice("themes")
	if len(themes) == 0 {
		themes = DefaultThemes
	}

	return &fileConfig{Path: path, ThemeList: themes}, nil
}

// defaultBasePath keeps the legacy document location: %APPDATA%\habit100 when
// APPDATA is set, ~/habit100 otherwise.
func defaultBasePath() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "habit100")
	}
	home, err := homedir.Dir()
	if err != nil {
		return "habit100"
	}
	return filepath.Join(home, "habit100")
}

type fileConfig struct {
	Path      string   `json:"path"`
	ThemeList []string `json:"themes"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Themes() []string {
	return f.ThemeList
}
