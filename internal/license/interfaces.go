package license

import (
	"context"

	"github.com/ytget/png-sorter/internal/model"
)

// Authenticator defines the interface for the license client.
type Authenticator interface {
	// Login authenticates a single-code license key for this machine and version
	Login(ctx context.Context, key, version, machineID string) model.LoginResult

	// Expiry looks up the expiry date of a license key
	Expiry(ctx context.Context, userName string) model.ExpiryResult
}
