package domain

import "errors"

// Sentinel errors for classifying failures across packages.
// Callers wrap these so the CLI can distinguish error categories
// with errors.Is without depending on transport details.
//
//	return fmt.Errorf("failed to list zones: %w", domain.ErrInvalidAuthHeader)
var (
	// ErrCredentialsNotFound indicates that no source yielded a complete
	// credential set.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrInvalidAuthHeader indicates the Cloudflare API rejected the
	// authorization headers as malformed (API error code 6111).
	ErrInvalidAuthHeader = errors.New("invalid authorization header")

	// ErrRetrieveFailed indicates the Cloudflare API answered with an
	// unexpected status.
	ErrRetrieveFailed = errors.New("failed to retrieve")
)
