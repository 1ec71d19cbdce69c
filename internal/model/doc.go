package model

// Package model defines domain data structures used across the app: per-file
// classification results, batch summaries and the license session. Structures
// are plain values so both the CLI and the UI can render them directly.
