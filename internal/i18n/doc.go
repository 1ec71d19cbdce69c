package i18n

// Package i18n loads the embedded YAML translations with go-i18n and exposes a
// small Localization type used by the CLI, the UI and the license client.
