package challenge

import (
	"context"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// Validator answers whether a hostname is currently a CNAME.
// It only checks existence, not the target.
type Validator struct {
	resolver Resolver
}

// NewValidator returns a Validator using resolver.
func NewValidator(resolver Resolver) *Validator {
	return &Validator{resolver: resolver}
}

// IsCNAME reports whether hostname itself has at least one CNAME record.
// Every failure is reported as false.
func (v *Validator) IsCNAME(ctx context.Context, hostname string) bool {
	records, err := v.resolver.Lookup(ctx, hostname, dns.TypeCNAME)
	if err != nil {
		logrus.Debugf("cname check for %s: %v", hostname, err)
		return false
	}
	return len(records) > 0
}
