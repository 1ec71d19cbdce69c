package platform

// Package platform contains OS/platform integration: directory listing,
// metadata-preserving file copies and opening folders in the system file manager.
