package enrich

import "regexp"

// Australian and New Zealand phone formats, international or national.
// Matched only against page text the executive was found in; numbers are
// never synthesized.
var rePhone = regexp.MustCompile(`(?:\+61|\+64)[ .-]?\(?\d{1,2}\)?(?:[ .-]?\d{3,4}){2,3}|\(0\d\)[ .-]?\d{4}[ .-]?\d{4}|0\d[ .-]?\d{3,4}[ .-]?\d{3,4}`)

func extractPhone(text string) string {
	return rePhone.FindString(text)
}
