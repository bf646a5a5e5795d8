package app

import (
	"context"
	"fmt"
	"io"

	"nathanbeddoewebdev/cfhost/internal/challenge"
	"nathanbeddoewebdev/cfhost/internal/styles"
)

// Report is the result of the DNS checks for one hostname.
type Report struct {
	Outcome challenge.Outcome

	// CNAMEChecked is set when the hostname CNAME check ran; IsCNAME holds its result.
	CNAMEChecked bool
	IsCNAME      bool
}

// CheckHostname runs the challenge verification and, when checkCNAME is
// set, the hostname CNAME check, writing every line to out. DNS failures
// are reported, never returned.
func CheckHostname(ctx context.Context, out io.Writer, hostname string, checkCNAME bool) Report {
	r := Report{Outcome: NewVerifier(out).Verify(ctx, hostname)}
	if r.Outcome.Found {
		fmt.Fprintln(out, styles.Check(true, fmt.Sprintf("ACME challenge is discoverable for %s.", hostname)))
	} else {
		fmt.Fprintln(out, styles.Check(false, fmt.Sprintf("No ACME challenge record found for %s.", hostname)))
	}

	if !checkCNAME {
		return r
	}
	r.CNAMEChecked = true
	r.IsCNAME = NewValidator().IsCNAME(ctx, hostname)
	if r.IsCNAME {
		fmt.Fprintln(out, styles.Check(true, fmt.Sprintf("%s is a CNAME.", hostname)))
	} else {
		fmt.Fprintln(out, styles.Check(false, fmt.Sprintf("%s is not a CNAME.", hostname)))
	}
	return r
}
