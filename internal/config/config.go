package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RoleRule matches a family of role titles by substring.
type RoleRule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

type Config struct {
	App struct {
		DataDir    string `yaml:"data_dir"`
		OutputName string `yaml:"output_name"`
	} `yaml:"app"`

	Limits struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"limits"`

	Discovery struct {
		Sources      []string `yaml:"sources"` // priority order
		LiveExchange bool     `yaml:"live_exchange"`
		ASXURL       string   `yaml:"asx_url"`
		NZXURL       string   `yaml:"nzx_url"`
	} `yaml:"discovery"`

	Hiring struct {
		Workers     int        `yaml:"workers"`
		CareerPaths []string   `yaml:"career_paths"`
		MaxJobLinks int        `yaml:"max_job_links"`
		LinkedInURL string     `yaml:"linkedin_jobs_url"`
		SeekAUURL   string     `yaml:"seek_au_url"`
		SeekNZURL   string     `yaml:"seek_nz_url"`
		Roles       []RoleRule `yaml:"roles"`
	} `yaml:"hiring"`

	Enrich struct {
		Workers         int      `yaml:"workers"`
		MaxCompanies    int      `yaml:"max_companies"`
		LeadershipPaths []string `yaml:"leadership_paths"`
		EmailPattern    string   `yaml:"email_pattern"` // first.last, flast, ...
		Verifier        struct {
			URL            string `yaml:"url"`
			KeyringAccount string `yaml:"keyring_account"`
		} `yaml:"verifier"`
	} `yaml:"enrich"`

	Scoring struct {
		Weights struct {
			Identity  int `yaml:"identity"`
			Market    int `yaml:"market"`
			Web       int `yaml:"web"`
			Hiring    int `yaml:"hiring"`
			Executive int `yaml:"executive"`
			Contact   int `yaml:"contact"`
		} `yaml:"weights"`
		HiringMultiplier struct {
			Active   float64 `yaml:"active"`
			Unknown  float64 `yaml:"unknown"`
			Inactive float64 `yaml:"inactive"`
		} `yaml:"hiring_multiplier"`
		TopN int `yaml:"top_n"`
	} `yaml:"scoring"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = "data"
	}
	if cfg.App.OutputName == "" {
		cfg.App.OutputName = "anz_prospects.xlsx"
	}
	if cfg.Limits.RequestsPerSecond <= 0 {
		cfg.Limits.RequestsPerSecond = 1.0
	}
	if cfg.Limits.Burst <= 0 {
		cfg.Limits.Burst = 2
	}
	if len(cfg.Discovery.Sources) == 0 {
		cfg.Discovery.Sources = []string{"asx", "nzx", "apra", "rbnz", "associations"}
	}
	if cfg.Hiring.Workers <= 0 {
		cfg.Hiring.Workers = 6
	}
	if cfg.Hiring.MaxJobLinks <= 0 {
		cfg.Hiring.MaxJobLinks = 3
	}
	if len(cfg.Hiring.CareerPaths) == 0 {
		cfg.Hiring.CareerPaths = []string{
			"/careers", "/jobs", "/join-us", "/work-with-us",
			"/about/careers", "/about-us/careers", "/current-vacancies",
		}
	}
	if cfg.Hiring.LinkedInURL == "" {
		cfg.Hiring.LinkedInURL = "https://www.linkedin.com/jobs/search/?keywords="
	}
	if cfg.Hiring.SeekAUURL == "" {
		cfg.Hiring.SeekAUURL = "https://www.seek.com.au/jobs?keywords="
	}
	if cfg.Hiring.SeekNZURL == "" {
		cfg.Hiring.SeekNZURL = "https://www.seek.co.nz/jobs?keywords="
	}
	if len(cfg.Hiring.Roles) == 0 {
		cfg.Hiring.Roles = []RoleRule{
			{Tag: "DevOps Engineer", Any: []string{
				"devops", "dev ops", "site reliability", "sre",
				"platform engineer", "infrastructure engineer",
			}},
			{Tag: "Software Developer", Any: []string{
				"software developer", "software engineer", "programmer",
				"web developer", "frontend", "backend", "full stack",
			}},
		}
	}
	if cfg.Enrich.Workers <= 0 {
		cfg.Enrich.Workers = 4
	}
	if cfg.Enrich.MaxCompanies <= 0 {
		cfg.Enrich.MaxCompanies = 100
	}
	if len(cfg.Enrich.LeadershipPaths) == 0 {
		cfg.Enrich.LeadershipPaths = []string{
			"/about/leadership", "/about/management", "/about/team",
			"/about-us/leadership", "/leadership", "/our-team", "/about-us",
		}
	}
	if cfg.Enrich.EmailPattern == "" {
		cfg.Enrich.EmailPattern = "first.last"
	}
	w := &cfg.Scoring.Weights
	if w.Identity+w.Market+w.Web+w.Hiring+w.Executive+w.Contact == 0 {
		w.Identity, w.Market, w.Web, w.Hiring, w.Executive, w.Contact = 15, 10, 15, 20, 20, 20
	}
	m := &cfg.Scoring.HiringMultiplier
	if m.Active == 0 && m.Unknown == 0 && m.Inactive == 0 {
		m.Active, m.Unknown, m.Inactive = 1.0, 0.5, 0.25
	}
	if cfg.Scoring.TopN <= 0 {
		cfg.Scoring.TopN = 10
	}
}
