package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	LoginWindowWidth  float32 = 360
	LoginWindowHeight float32 = 220
	ClassifierWidth   float32 = 620
	ClassifierHeight  float32 = 360
)

// Icons (emojis/symbols)
const (
	IconFolder   = "📁"
	IconLanguage = "🌐"
)

// Timeouts for background work started from the UI
const (
	LicenseCallTimeout = 35 * time.Second
)
