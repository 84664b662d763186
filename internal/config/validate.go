package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus any errors/warnings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Discovery.Sources = trimList(out.Discovery.Sources)
	out.Hiring.CareerPaths = trimList(out.Hiring.CareerPaths)
	out.Enrich.LeadershipPaths = trimList(out.Enrich.LeadershipPaths)

	known := map[string]bool{"asx": true, "nzx": true, "apra": true, "rbnz": true, "associations": true}
	for _, s := range out.Discovery.Sources {
		if !known[strings.ToLower(s)] {
			res.addWarn("discovery source %q is not recognized and will be skipped", s)
		}
	}
	if len(out.Discovery.Sources) == 0 {
		res.addErr("discovery.sources must list at least one source")
	}

	if out.Limits.RequestsPerSecond > 5 {
		res.addWarn("limits.requests_per_second=%.1f is high and may get lookups blocked", out.Limits.RequestsPerSecond)
	}

	for i, r := range out.Hiring.Roles {
		if strings.TrimSpace(r.Tag) == "" {
			res.addErr("hiring.roles[%d].tag is required", i)
		}
		if len(r.Any) == 0 {
			res.addErr("hiring.roles[%d].any must have at least 1 term", i)
		}
		for j, term := range r.Any {
			if strings.TrimSpace(term) == "" {
				res.addErr("hiring.roles[%d].any[%d] cannot be empty", i, j)
			}
		}
	}

	switch out.Enrich.EmailPattern {
	case "first.last", "firstlast", "first_last", "flast", "first.l", "f.last":
	default:
		res.addErr("enrich.email_pattern %q is not a known pattern", out.Enrich.EmailPattern)
	}

	if out.Enrich.Verifier.URL != "" && out.Enrich.Verifier.KeyringAccount == "" {
		res.addWarn("enrich.verifier.url is set but keyring_account is empty; verification will be skipped")
	}

	w := out.Scoring.Weights
	if w.Identity < 0 || w.Market < 0 || w.Web < 0 || w.Hiring < 0 || w.Executive < 0 || w.Contact < 0 {
		res.addErr("scoring.weights must all be >= 0")
	}
	if w.Identity+w.Market+w.Web+w.Hiring+w.Executive+w.Contact == 0 {
		res.addErr("scoring.weights must not all be zero")
	}

	m := out.Scoring.HiringMultiplier
	if m.Active < m.Unknown || m.Unknown < m.Inactive {
		res.addWarn("hiring multipliers are not ordered active >= unknown >= inactive; ranking may surprise you")
	}

	return out, res
}
