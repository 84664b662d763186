package consolidate

// Static text for the methodology and sources sheets.

var methodologyLines = []string{
	"ANZ Insurance & Finance Prospect Pipeline",
	"",
	"Stage 1 - Company Discovery",
	"Companies are collected from exchange listings (ASX, NZX), regulator",
	"registers (APRA, RBNZ) and industry association membership lists, then",
	"deduplicated on a normalized company name (lowercased, whitespace",
	"collapsed, legal suffixes stripped). The first source in priority order",
	"wins on conflicting fields; later sources only fill blanks.",
	"",
	"Stage 2 - Hiring Verification",
	"Each company's careers page, LinkedIn Jobs and Seek are checked for the",
	"target role families. Any keyword match marks the company active. A",
	"company whose surfaces all responded without a match is inactive. If",
	"every surface failed, the status is unknown - never guessed.",
	"",
	"Stage 3 - Contact Enrichment",
	"Technology executives (CTO, CIO, Head of Technology and similar) are",
	"collected from leadership pages and public LinkedIn profiles. Email",
	"addresses follow the company's configured pattern (default first.last).",
	"A pattern-only guess scores 0.40 confidence, a domain with MX records",
	"0.80, and a positive answer from the verification service 0.95. Phone",
	"numbers are taken from page text only, never generated.",
	"",
	"Stage 4 - Data Consolidation",
	"Records are merged across stages by normalized name. The data quality",
	"score is a weighted completeness measure in [0,1]; the opportunity score",
	"multiplies it by a hiring-status factor (active 1.0, unknown 0.5,",
	"inactive 0.25). Re-running consolidation on unchanged inputs produces",
	"an identical workbook.",
}

type sourceRow struct {
	Name, Kind, URL, Coverage string
}

var sourceRows = []sourceRow{
	{"ASX listed companies", "Exchange", "https://www.asx.com.au", "Australian listed insurers and financials"},
	{"NZX listed companies", "Exchange", "https://www.nzx.com", "New Zealand listed insurers and financials"},
	{"APRA register", "Regulator", "https://www.apra.gov.au", "Australian authorised deposit-taking institutions and insurers"},
	{"RBNZ register", "Regulator", "https://www.rbnz.govt.nz", "New Zealand registered banks and licensed insurers"},
	{"Industry associations", "Association", "https://www.insurancecouncil.com.au", "ICA, ICNZ and FSC member lists"},
	{"Company careers pages", "Hiring", "", "Direct role listings per company site"},
	{"LinkedIn Jobs", "Hiring", "https://www.linkedin.com/jobs", "Cross-company role search"},
	{"Seek AU / NZ", "Hiring", "https://www.seek.com.au", "Cross-company role search"},
	{"Company leadership pages", "Contacts", "", "Executive names, titles, phone numbers"},
	{"LinkedIn profiles", "Contacts", "https://www.linkedin.com", "Executive profile search"},
}
