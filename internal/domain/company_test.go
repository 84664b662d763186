package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"QBE Insurance Group Limited", "qbe insurance"},
		{"QBE  Insurance   Group", "qbe insurance"},
		{"Suncorp Group Ltd", "suncorp"},
		{"Suncorp Group Ltd.", "suncorp"},
		{"  Tower Limited ", "tower"},
		{"Westpac Banking Corporation", "westpac banking"},
		{"Plain Name", "plain name"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Key(c.in), "Key(%q)", c.in)
	}
}

func TestKeyEqualAcrossVariants(t *testing.T) {
	assert.Equal(t, Key("IAG Limited"), Key("iag ltd"))
	assert.Equal(t, Key("Medibank Pty Ltd"), Key("Medibank"))
}

func TestMergeKeepsPriority(t *testing.T) {
	c := Company{
		Name:     "QBE Insurance Group",
		Industry: IndustryInsurance,
		Country:  "Australia",
	}
	c.AddSourceRef("asx")

	other := Company{
		Name:        "QBE Insurance Group Limited",
		Industry:    IndustryBoth, // must not win
		Country:     "New Zealand",
		MarketCap:   "AUD 27B",
		Website:     "https://www.qbe.com",
		CompanySize: 13000,
	}
	other.AddSourceRef("associations")

	c.Merge(other)

	assert.Equal(t, IndustryInsurance, c.Industry)
	assert.Equal(t, "Australia", c.Country)
	assert.Equal(t, "AUD 27B", c.MarketCap, "blank fields filled from other")
	assert.Equal(t, "https://www.qbe.com", c.Website)
	assert.Equal(t, 13000, c.CompanySize)
	assert.Equal(t, []string{"asx", "associations"}, c.SourceRefs)
}

func TestAddOpenRoleDedupes(t *testing.T) {
	var c Company
	c.AddOpenRole("DevOps Engineer")
	c.AddOpenRole("devops engineer")
	c.AddOpenRole("Software Developer")
	c.AddOpenRole("")
	assert.Equal(t, []string{"DevOps Engineer", "Software Developer"}, c.OpenRoles)
}
