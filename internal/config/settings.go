// internal/config/settings.go
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// SettingsFileName — имя файла настроек рядом с бинарником.
const SettingsFileName = "arena.cfg.json"

// WindowSettings описывает параметры окна.
type WindowSettings struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
	FPS    int `json:"fps" mapstructure:"fps"`
}

// CameraSettings описывает параметры орбитальной камеры.
type CameraSettings struct {
	Sensitivity float64 `json:"sensitivity" mapstructure:"sensitivity"`
}

// AudioSettings описывает параметры звука.
type AudioSettings struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"`
}

// Settings — пользовательские настройки, читаемые из JSON-файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
type Settings struct {
	Window   WindowSettings `json:"window" mapstructure:"window"`
	Camera   CameraSettings `json:"camera" mapstructure:"camera"`
	Audio    AudioSettings  `json:"audio" mapstructure:"audio"`
	LogLevel string         `json:"logLevel" mapstructure:"logLevel"`
	Seed     int64          `json:"seed" mapstructure:"seed"`
}

// LoadSettings reads settings from configDir and applies defaults for
// anything the file does not override.
func LoadSettings(configDir string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("window.fps", TargetFPS)

	v.SetDefault("camera.sensitivity", CameraSensitivity)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.8)

	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)

	v.SetConfigName(SettingsFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	s.sanitize()
	return s, nil
}

// sanitize приводит значения к допустимым диапазонам.
func (s *Settings) sanitize() {
	if s.Window.Width <= 0 {
		s.Window.Width = ScreenWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = ScreenHeight
	}
	if s.Window.FPS <= 0 {
		s.Window.FPS = TargetFPS
	}
	if s.Camera.Sensitivity <= 0 {
		s.Camera.Sensitivity = CameraSensitivity
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
}
