package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestInputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No default value
	if dir := settings.GetInputDirectory(); dir != "" {
		t.Errorf("Expected empty input directory, got %s", dir)
	}

	customDir := "/custom/images"
	settings.SetInputDirectory(customDir)

	if retrieved := settings.GetInputDirectory(); retrieved != customDir {
		t.Errorf("Expected input directory %s, got %s", customDir, retrieved)
	}
}

func TestOutputDirectories(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if dir := settings.GetTransparentDirectory(); dir != "transparent" {
		t.Errorf("Expected default transparent dir 'transparent', got %s", dir)
	}
	if dir := settings.GetOpaqueDirectory(); dir != "opaque" {
		t.Errorf("Expected default opaque dir 'opaque', got %s", dir)
	}

	// Test setting custom values
	settings.SetTransparentDirectory("/out/alpha")
	settings.SetOpaqueDirectory("/out/solid")

	if dir := settings.GetTransparentDirectory(); dir != "/out/alpha" {
		t.Errorf("Expected transparent dir '/out/alpha', got %s", dir)
	}
	if dir := settings.GetOpaqueDirectory(); dir != "/out/solid" {
		t.Errorf("Expected opaque dir '/out/solid', got %s", dir)
	}

	// Test empty value defaults back
	settings.SetTransparentDirectory("")
	settings.SetOpaqueDirectory("")
	if dir := settings.GetTransparentDirectory(); dir != "transparent" {
		t.Errorf("Empty transparent dir should default to 'transparent', got %s", dir)
	}
	if dir := settings.GetOpaqueDirectory(); dir != "opaque" {
		t.Errorf("Empty opaque dir should default to 'opaque', got %s", dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("zh")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "zh" {
		t.Errorf("Expected language 'zh', got %s", retrievedLang)
	}
}
