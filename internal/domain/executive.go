package domain

// Verification describes how an executive's contact details were confirmed.
type Verification string

const (
	VerifyNone    Verification = "not_verified"
	VerifyMX      Verification = "domain_mx_verified"
	VerifyService Verification = "service_verified"
)

// Executive is one technology decision maker attached to a company.
type Executive struct {
	CompanyKey  string // domain.Key of the owning company
	Name        string
	Title       string
	LinkedInURL string
	Email       string
	Phone       string
	Confidence  float64 // [0,1], how trustworthy the contact details are
	Verified    Verification
	Source      string // URL or label of where the executive was found
}
