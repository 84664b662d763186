package consolidate

import (
	"sort"

	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/config"
	"github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"
)

// Scored is a consolidated company record with its executives and scores.
type Scored struct {
	Company    domain.Company
	Executives []domain.Executive

	QualityScore float64 // [0,1], completeness of the record
	Opportunity  float64 // quality weighted by hiring status
}

// score computes the data quality score as a weighted sum of per-group
// completeness fractions. Filling any field never lowers the score.
func score(c domain.Company, execs []domain.Executive, w config.Config) float64 {
	weights := w.Scoring.Weights
	total := weights.Identity + weights.Market + weights.Web +
		weights.Hiring + weights.Executive + weights.Contact
	if total == 0 {
		return 0
	}

	sum := float64(weights.Identity)*identityFraction(c) +
		float64(weights.Market)*marketFraction(c) +
		float64(weights.Web)*webFraction(c) +
		float64(weights.Hiring)*hiringFraction(c) +
		float64(weights.Executive)*executiveFraction(execs) +
		float64(weights.Contact)*contactFraction(execs)

	return sum / float64(total)
}

func identityFraction(c domain.Company) float64 {
	n := 0
	if c.Name != "" {
		n++
	}
	if c.Industry != "" {
		n++
	}
	if c.Country != "" {
		n++
	}
	return float64(n) / 3
}

func marketFraction(c domain.Company) float64 {
	n := 0
	if c.MarketCap != "" {
		n++
	}
	if c.CompanySize > 0 {
		n++
	}
	return float64(n) / 2
}

func webFraction(c domain.Company) float64 {
	n := 0
	if c.Website != "" {
		n++
	}
	if c.LinkedInURL != "" {
		n++
	}
	return float64(n) / 2
}

func hiringFraction(c domain.Company) float64 {
	f := 0.0
	if c.HiringStatus == domain.HiringActive || c.HiringStatus == domain.HiringInactive {
		f += 0.5 // status actually determined
	}
	if len(c.OpenRoles) > 0 {
		f += 0.5
	}
	return f
}

func executiveFraction(execs []domain.Executive) float64 {
	switch {
	case len(execs) >= 2:
		return 1
	case len(execs) == 1:
		return 0.5
	default:
		return 0
	}
}

// contactFraction rewards the best email confidence plus the presence of
// any phone number.
func contactFraction(execs []domain.Executive) float64 {
	bestEmail := 0.0
	phone := 0.0
	for _, e := range execs {
		if e.Email != "" && e.Confidence > bestEmail {
			bestEmail = e.Confidence
		}
		if e.Phone != "" {
			phone = 1
		}
	}
	return (bestEmail + phone) / 2
}

func hiringMultiplier(status domain.HiringStatus, cfg config.Config) float64 {
	m := cfg.Scoring.HiringMultiplier
	switch status {
	case domain.HiringActive:
		return m.Active
	case domain.HiringInactive:
		return m.Inactive
	default:
		return m.Unknown
	}
}

// rank orders records by opportunity score descending, breaking ties by
// company name ascending so output order is stable.
func rank(records []Scored) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Opportunity != records[j].Opportunity {
			return records[i].Opportunity > records[j].Opportunity
		}
		return records[i].Company.Name < records[j].Company.Name
	})
}
