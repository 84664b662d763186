package domain

import "strings"

type Industry string

const (
	IndustryInsurance Industry = "Insurance"
	IndustryFinance   Industry = "Finance"
	IndustryBoth      Industry = "Both"
)

type HiringStatus string

const (
	HiringActive   HiringStatus = "active"
	HiringInactive HiringStatus = "inactive"
	HiringUnknown  HiringStatus = "unknown"
)

// Company is the per-company record accumulated across pipeline stages.
// Name is set by discovery and never changes; later stages only add fields.
type Company struct {
	Name         string
	Industry     Industry
	Country      string
	MarketCap    string // e.g. "AUD 170B", empty if unknown
	CompanySize  int    // employees, 0 if unknown
	Website      string
	LinkedInURL  string
	HiringStatus HiringStatus
	OpenRoles    []string // role titles matched by verification
	SourceRefs   []string
	LastVerified string // YYYY-MM-DD
}

// Key returns the dedupe/merge key for a company name:
// lowercased, whitespace-collapsed, legal suffixes stripped.
func Key(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ToLower(name)

	for {
		trimmed := name
		for _, suf := range legalSuffixes {
			trimmed = strings.TrimSuffix(trimmed, suf)
		}
		trimmed = strings.TrimRight(trimmed, " .,")
		if trimmed == name {
			break
		}
		name = trimmed
	}
	return name
}

var legalSuffixes = []string{
	" ltd", " ltd.", " limited",
	" pty", " pty.", " pty ltd",
	" corp", " corp.", " corporation",
	" inc", " inc.", " llc",
	" group", " holdings",
}

// AddSourceRef appends ref if not already present.
func (c *Company) AddSourceRef(ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return
	}
	for _, r := range c.SourceRefs {
		if r == ref {
			return
		}
	}
	c.SourceRefs = append(c.SourceRefs, ref)
}

// AddOpenRole appends a matched role title if not already present.
func (c *Company) AddOpenRole(role string) {
	role = strings.TrimSpace(role)
	if role == "" {
		return
	}
	for _, r := range c.OpenRoles {
		if strings.EqualFold(r, role) {
			return
		}
	}
	c.OpenRoles = append(c.OpenRoles, role)
}

// Merge folds other into c without overwriting fields c already has.
// c keeps priority for every scalar field; other only fills blanks.
func (c *Company) Merge(other Company) {
	if c.Industry == "" {
		c.Industry = other.Industry
	}
	if c.Country == "" {
		c.Country = other.Country
	}
	if c.MarketCap == "" {
		c.MarketCap = other.MarketCap
	}
	if c.CompanySize == 0 {
		c.CompanySize = other.CompanySize
	}
	if c.Website == "" {
		c.Website = other.Website
	}
	if c.LinkedInURL == "" {
		c.LinkedInURL = other.LinkedInURL
	}
	for _, ref := range other.SourceRefs {
		c.AddSourceRef(ref)
	}
	for _, role := range other.OpenRoles {
		c.AddOpenRole(role)
	}
}
