package tenants

import (
	"regexp"
	"strings"
)

// Kind classifies what a request host points at.
type Kind int

const (
	// KindLocal is a bare dev host such as localhost:3000.
	KindLocal Kind = iota
	// KindDevelopment is a raw IPv4 address; upstream is reached as localhost.
	KindDevelopment
	// KindRoot is the platform's own domain (or its www alias).
	KindRoot
	// KindTenant is a dealer subdomain or custom domain.
	KindTenant
)

func (k Kind) String() string {
	switch k {
	case KindDevelopment:
		return "development"
	case KindRoot:
		return "root"
	case KindTenant:
		return "tenant"
	default:
		return "local"
	}
}

// Target is where upstream lookups for a request go.
type Target struct {
	Host string // value for Host / X-Forwarded-Host on the upstream call
	Slug string // empty when the upstream should resolve by host alone
	Kind Kind
}

var ipv4Prefix = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

// Resolver maps request hosts to tenants. The zero value treats every
// multi-label host as a tenant subdomain.
type Resolver struct {
	RootDomain    string // e.g. pes.bentcrankshaft.com
	ReferenceSlug string // tenant served on the root domain
}

// Resolve never fails: anything it cannot classify resolves to an empty slug.
func (r Resolver) Resolve(host string) Target {
	host = strings.TrimSpace(host)
	if ipv4Prefix.MatchString(host) {
		return Target{Host: "localhost", Kind: KindDevelopment}
	}
	bare := strings.ToLower(stripPort(host))
	if root := strings.ToLower(r.RootDomain); root != "" && r.ReferenceSlug != "" {
		if bare == root || bare == "www."+root {
			return Target{Host: r.ReferenceSlug + "." + root, Slug: r.ReferenceSlug, Kind: KindRoot}
		}
	}
	labels := strings.Split(host, ".")
	if len(labels) > 1 && !strings.Contains(strings.ToLower(host), "localhost") && labels[0] != "" {
		return Target{Host: host, Slug: strings.ToLower(labels[0]), Kind: KindTenant}
	}
	return Target{Host: host, Kind: KindLocal}
}

func stripPort(host string) string {
	if i := strings.LastIndex(host, ":"); i > 0 && !strings.Contains(host[i:], "]") {
		return host[:i]
	}
	return host
}
