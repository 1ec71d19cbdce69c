package license

// Package license talks to the remote license endpoint: single-code login and
// expiry lookup over form-encoded POSTs. Responses are raw text interpreted by
// their length; every failure collapses to one localized retry message.
