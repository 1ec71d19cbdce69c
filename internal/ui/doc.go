package ui

// Package ui contains the Fyne-based desktop user interface. A license screen
// gates access to the classifier screen; both live in one window whose content
// is swapped after a successful login. All UI strings are localized via i18n.
