package challenge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// DefaultNameservers are the public recursive resolvers every check is sent
// to, in order. Local resolver configuration is ignored so the result matches
// what the public Internet sees.
var DefaultNameservers = []string{"8.8.8.8", "1.1.1.1"}

// Lookup failure kinds. Every error returned by DNSResolver.Lookup wraps
// exactly one of these.
var (
	// ErrNoAnswer indicates the name exists but has no record of the requested type.
	ErrNoAnswer = errors.New("no answer")

	// ErrNXDomain indicates the name does not exist.
	ErrNXDomain = errors.New("name does not exist")

	// ErrLookupFailed covers transport errors, timeouts, and unexpected response codes.
	ErrLookupFailed = errors.New("lookup failed")
)

// Resolver looks up the records of one type at a name.
type Resolver interface {
	Lookup(ctx context.Context, name string, qtype uint16) ([]string, error)
}

// DNSResolver queries a fixed, ordered list of nameservers directly.
// Servers are tried in order; the next one is used only when the previous
// one could not be reached. A response from any server is authoritative.
type DNSResolver struct {
	nameservers []string
	udp         *dns.Client
	tcp         *dns.Client
}

var _ Resolver = (*DNSResolver)(nil)

// NewDNSResolver returns a resolver for the given nameservers. Entries
// without a port use 53. With no arguments DefaultNameservers is used.
func NewDNSResolver(nameservers ...string) *DNSResolver {
	if len(nameservers) == 0 {
		nameservers = DefaultNameservers
	}
	servers := make([]string, 0, len(nameservers))
	for _, ns := range nameservers {
		if _, _, err := net.SplitHostPort(ns); err != nil {
			ns = net.JoinHostPort(ns, "53")
		}
		servers = append(servers, ns)
	}
	return &DNSResolver{
		nameservers: servers,
		udp:         &dns.Client{Net: "udp"},
		tcp:         &dns.Client{Net: "tcp"},
	}
}

// Nameservers returns the host:port list queried by the resolver.
func (r *DNSResolver) Nameservers() []string {
	return append([]string(nil), r.nameservers...)
}

// Lookup returns the TXT strings or CNAME targets at name.
func (r *DNSResolver) Lookup(ctx context.Context, name string, qtype uint16) ([]string, error) {
	typ := dns.TypeToString[qtype]

	resp, err := r.exchange(ctx, name, qtype)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrLookupFailed, name, typ, err)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, fmt.Errorf("%w: %s", ErrNXDomain, name)
	default:
		return nil, fmt.Errorf("%w: %s %s: %s", ErrLookupFailed, name, typ, dns.RcodeToString[resp.Rcode])
	}

	records := extract(resp, qtype)
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoAnswer, name, typ)
	}
	return records, nil
}

// exchange sends the query to each nameserver in turn until one answers.
func (r *DNSResolver) exchange(ctx context.Context, name string, qtype uint16) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	var lastErr error
	for _, ns := range r.nameservers {
		resp, _, err := r.udp.ExchangeContext(ctx, msg, ns)
		if err == nil && resp.Truncated {
			resp, _, err = r.tcp.ExchangeContext(ctx, msg, ns)
		}
		if err != nil {
			logrus.Debugf("dns: %s %s via %s: %v", name, dns.TypeToString[qtype], ns, err)
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		logrus.Debugf("dns: %s %s via %s: %s, %d answers", name, dns.TypeToString[qtype], ns, dns.RcodeToString[resp.Rcode], len(resp.Answer))
		return resp, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no nameservers configured")
	}
	return nil, lastErr
}

// extract keeps only answers of the requested type. A TXT query against an
// alias returns the CNAME too; that record is not a TXT answer.
func extract(resp *dns.Msg, qtype uint16) []string {
	var out []string
	for _, rr := range resp.Answer {
		switch v := rr.(type) {
		case *dns.TXT:
			if qtype == dns.TypeTXT {
				out = append(out, strings.Join(v.Txt, ""))
			}
		case *dns.CNAME:
			if qtype == dns.TypeCNAME {
				out = append(out, v.Target)
			}
		}
	}
	return out
}
