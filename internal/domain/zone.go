package domain

// Zone is a Cloudflare-managed DNS domain.
type Zone struct {
	// ID is the opaque Cloudflare zone identifier.
	ID string `json:"id"`

	// Name is the fully-qualified domain name of the zone (e.g. "example.com").
	Name string `json:"name"`

	// Status is the zone activation status (e.g. "active", "pending").
	Status string `json:"status"`
}
