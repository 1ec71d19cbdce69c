package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/png-sorter/internal/i18n"
	"github.com/ytget/png-sorter/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyInputDir       = "input_directory"
	KeyTransparentDir = "transparent_directory"
	KeyOpaqueDir      = "opaque_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultLanguage = i18n.LangSystem
)

// Settings manages GUI configuration persisted in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetInputDirectory returns the last used input directory, empty if none
func (s *Settings) GetInputDirectory() string {
	return s.app.Preferences().String(KeyInputDir)
}

// SetInputDirectory remembers the input directory
func (s *Settings) SetInputDirectory(dir string) {
	s.app.Preferences().SetString(KeyInputDir, dir)
}

// GetTransparentDirectory returns the transparent output directory
func (s *Settings) GetTransparentDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyTransparentDir, model.DefaultTransparentDir)
}

// SetTransparentDirectory sets the transparent output directory; empty
// restores the default
func (s *Settings) SetTransparentDirectory(dir string) {
	if dir == "" {
		dir = model.DefaultTransparentDir
	}
	s.app.Preferences().SetString(KeyTransparentDir, dir)
}

// GetOpaqueDirectory returns the opaque output directory
func (s *Settings) GetOpaqueDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyOpaqueDir, model.DefaultOpaqueDir)
}

// SetOpaqueDirectory sets the opaque output directory; empty restores the default
func (s *Settings) SetOpaqueDirectory(dir string) {
	if dir == "" {
		dir = model.DefaultOpaqueDir
	}
	s.app.Preferences().SetString(KeyOpaqueDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
