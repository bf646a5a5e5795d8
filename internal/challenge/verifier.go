// Package challenge checks public DNS for ACME challenge records.
//
// A Verifier looks for either proof mechanism at _acme-challenge.<hostname>:
// an inline TXT record or a CNAME delegation. Either one is enough. DNS
// failures of every kind are absorbed into the Outcome and never returned
// as errors.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/miekg/dns"
	"golang.org/x/sync/errgroup"
)

// Prefix is prepended to a hostname to form the challenge record name.
const Prefix = "_acme-challenge."

// ChallengeName returns the challenge record name for hostname.
// The hostname is used as given.
func ChallengeName(hostname string) string {
	return Prefix + hostname
}

// LookupResult is the outcome of a single typed lookup.
type LookupResult struct {
	Type    string
	Records []string
	Err     error
}

// Found reports whether the lookup returned at least one record.
func (r LookupResult) Found() bool {
	return len(r.Records) > 0
}

// Outcome is the combined result of a verification.
type Outcome struct {
	Hostname      string
	ChallengeName string
	TXT           LookupResult
	CNAME         LookupResult

	// Found is true when either lookup returned records.
	Found bool

	// Lines are the diagnostic lines written for this verification.
	Lines []string
}

// CurrentRecord returns the first record found by either lookup, TXT first,
// or "" when nothing was found.
func (o Outcome) CurrentRecord() string {
	for _, r := range []LookupResult{o.TXT, o.CNAME} {
		if r.Found() {
			return r.Records[0]
		}
	}
	return ""
}

// Verifier checks for ACME challenge records through a single resolver.
type Verifier struct {
	resolver Resolver
	out      io.Writer
}

// NewVerifier returns a Verifier that sends both lookups through resolver
// and writes diagnostic lines to out. A nil out discards them.
func NewVerifier(resolver Resolver, out io.Writer) *Verifier {
	if out == nil {
		out = io.Discard
	}
	return &Verifier{resolver: resolver, out: out}
}

// Verify looks up TXT and CNAME records at the challenge name concurrently
// and reports whether either exists.
func (v *Verifier) Verify(ctx context.Context, hostname string) Outcome {
	name := ChallengeName(hostname)

	var txt, cname LookupResult
	var g errgroup.Group
	g.Go(func() error {
		txt = lookup(ctx, v.resolver, name, dns.TypeTXT)
		return nil
	})
	g.Go(func() error {
		cname = lookup(ctx, v.resolver, name, dns.TypeCNAME)
		return nil
	})
	_ = g.Wait()

	o := Outcome{
		Hostname:      hostname,
		ChallengeName: name,
		TXT:           txt,
		CNAME:         cname,
		Found:         txt.Found() || cname.Found(),
	}
	o.Lines = describe(o)
	for _, line := range o.Lines {
		fmt.Fprintln(v.out, line)
	}
	return o
}

func lookup(ctx context.Context, r Resolver, name string, qtype uint16) LookupResult {
	records, err := r.Lookup(ctx, name, qtype)
	res := LookupResult{Type: dns.TypeToString[qtype], Records: records, Err: err}
	if err == nil && len(records) == 0 {
		res.Err = fmt.Errorf("%w: %s %s", ErrNoAnswer, name, res.Type)
	}
	return res
}

// describe renders one line per record found and one line per failed lookup.
func describe(o Outcome) []string {
	current := o.CurrentRecord()
	if current == "" {
		current = "none"
	}

	var lines []string
	for _, r := range []LookupResult{o.TXT, o.CNAME} {
		if r.Found() {
			for _, rec := range r.Records {
				lines = append(lines, fmt.Sprintf("Found %s record for %s: %s", r.Type, o.ChallengeName, rec))
			}
			continue
		}
		lines = append(lines, fmt.Sprintf("%s check failed for %s: %s. Current record: %s. Desired record: %s %s",
			r.Type, o.ChallengeName, FailureReason(r.Err), current, o.ChallengeName, r.Type))
	}
	return lines
}

// FailureReason returns a short human-readable description of a lookup error.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "no records"
	case errors.Is(err, ErrNoAnswer):
		return "name exists but has no record of this type"
	case errors.Is(err, ErrNXDomain):
		return "name does not exist (NXDOMAIN)"
	default:
		return fmt.Sprintf("resolution error (%v)", err)
	}
}
