package schema

import "fmt"

// Domain identifies a configuration domain. Singleton domains (main, assets)
// have exactly one document; collection domains (strategy, risk, agent) hold
// one document per name under a subdirectory.
type Domain string

const (
	// DomainMain is the platform-wide configuration (main.yaml).
	DomainMain Domain = "main"

	// DomainAssets is the tradable asset catalog (assets.yaml).
	DomainAssets Domain = "assets"

	// DomainStrategy is a named trading strategy (strategies/<name>.yaml).
	DomainStrategy Domain = "strategy"

	// DomainRisk is a named risk profile (risk/<name>.yaml).
	DomainRisk Domain = "risk"

	// DomainAgent is a named AI agent definition (agents/<name>.yaml).
	DomainAgent Domain = "agent"
)

// Domains lists every configuration domain in catalog order.
var Domains = []Domain{DomainMain, DomainAssets, DomainStrategy, DomainRisk, DomainAgent}

// Singleton reports whether the domain has a single unnamed document.
func (d Domain) Singleton() bool {
	return d == DomainMain || d == DomainAssets
}

// Subdirectory returns the directory holding a collection domain's documents
// relative to the configuration root. It returns "" for singleton domains.
func (d Domain) Subdirectory() string {
	switch d {
	case DomainStrategy:
		return "strategies"
	case DomainRisk:
		return "risk"
	case DomainAgent:
		return "agents"
	default:
		return ""
	}
}

// SectionKey returns the optional top-level wrapper key a collection
// document may nest its content under (e.g., risk profiles written as
// "risk_management: {...}"). It returns "" when no unwrapping applies.
func (d Domain) SectionKey() string {
	switch d {
	case DomainStrategy:
		return "strategy"
	case DomainRisk:
		return "risk_management"
	case DomainAgent:
		return "agent"
	default:
		return ""
	}
}

// ParseDomain converts a user-supplied domain string to a Domain.
// It accepts both the singular domain names and the plural directory
// names used by the CLI (e.g., "strategies" for DomainStrategy).
func ParseDomain(s string) (Domain, error) {
	switch s {
	case "main":
		return DomainMain, nil
	case "assets":
		return DomainAssets, nil
	case "strategy", "strategies":
		return DomainStrategy, nil
	case "risk":
		return DomainRisk, nil
	case "agent", "agents":
		return DomainAgent, nil
	default:
		return "", fmt.Errorf("unknown configuration domain %q", s)
	}
}
