package discover

import "github.com/DavidOgalo/ANZ-Insurance-Finance-Project/internal/domain"

// Seed tables for each reference source. Exchange listings carry market
// caps; registry and association seeds only identify companies. Live
// scrapes, when enabled, replace the exchange seeds and fall back to them.

var asxSeed = []domain.Company{
	{Name: "Commonwealth Bank of Australia", Industry: domain.IndustryFinance, Country: "Australia", MarketCap: "AUD 170B", Website: "commbank.com.au"},
	{Name: "Westpac Banking Corporation", Industry: domain.IndustryFinance, Country: "Australia", MarketCap: "AUD 90B", Website: "westpac.com.au"},
	{Name: "National Australia Bank", Industry: domain.IndustryFinance, Country: "Australia", MarketCap: "AUD 110B", Website: "nab.com.au"},
	{Name: "ANZ Banking Group", Industry: domain.IndustryFinance, Country: "Australia", MarketCap: "AUD 85B", Website: "anz.com.au"},
	{Name: "Macquarie Group", Industry: domain.IndustryFinance, Country: "Australia", MarketCap: "AUD 75B", Website: "macquarie.com"},
	{Name: "QBE Insurance Group", Industry: domain.IndustryInsurance, Country: "Australia", MarketCap: "AUD 25B", Website: "qbe.com"},
	{Name: "Insurance Australia Group", Industry: domain.IndustryInsurance, Country: "Australia", MarketCap: "AUD 17B", Website: "iag.com.au"},
	{Name: "Suncorp Group", Industry: domain.IndustryBoth, Country: "Australia", MarketCap: "AUD 22B", Website: "suncorp.com.au"},
	{Name: "AMP Limited", Industry: domain.IndustryBoth, Country: "Australia", MarketCap: "AUD 4B", Website: "amp.com.au"},
	{Name: "Medibank Private", Industry: domain.IndustryInsurance, Country: "Australia", MarketCap: "AUD 11B", Website: "medibank.com.au"},
}

var nzxSeed = []domain.Company{
	{Name: "Heartland Group Holdings", Industry: domain.IndustryFinance, Country: "New Zealand", MarketCap: "NZD 1B", Website: "heartland.co.nz"},
	{Name: "Tower Limited", Industry: domain.IndustryInsurance, Country: "New Zealand", MarketCap: "NZD 500M", Website: "tower.co.nz"},
	{Name: "Westpac Banking Corporation", Industry: domain.IndustryFinance, Country: "New Zealand", MarketCap: "NZD 95B", Website: "westpac.co.nz"},
	{Name: "ANZ Bank New Zealand", Industry: domain.IndustryFinance, Country: "New Zealand", MarketCap: "NZD 88B", Website: "anz.co.nz"},
	{Name: "Kiwibank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "kiwibank.co.nz"},
}

var apraSeed = []domain.Company{
	{Name: "Bank of Queensland", Industry: domain.IndustryFinance, Country: "Australia", Website: "boq.com.au"},
	{Name: "Bendigo and Adelaide Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "bendigobank.com.au"},
	{Name: "Judo Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "judo.bank"},
	{Name: "Tyro Payments", Industry: domain.IndustryFinance, Country: "Australia", Website: "tyro.com"},
	{Name: "MyState Limited", Industry: domain.IndustryFinance, Country: "Australia", Website: "mystate.com.au"},
	{Name: "Heritage Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "heritage.com.au"},
	{Name: "Teachers Mutual Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "tmbank.com.au"},
	{Name: "Greater Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "greater.com.au"},
	{Name: "IMB Bank", Industry: domain.IndustryFinance, Country: "Australia", Website: "imb.com.au"},
	{Name: "Beyond Bank Australia", Industry: domain.IndustryFinance, Country: "Australia", Website: "beyondbank.com.au"},
}

var rbnzSeed = []domain.Company{
	{Name: "Bank of New Zealand", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "bnz.co.nz"},
	{Name: "ASB Bank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "asb.co.nz"},
	{Name: "TSB Bank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "tsb.co.nz"},
	{Name: "Heartland Bank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "heartland.co.nz"},
	{Name: "The Co-operative Bank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "co-operativebank.co.nz"},
	{Name: "SBS Bank", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "sbsbank.co.nz"},
	{Name: "Rabobank New Zealand", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "rabobank.co.nz"},
	{Name: "HSBC New Zealand", Industry: domain.IndustryFinance, Country: "New Zealand", Website: "hsbc.co.nz"},
}

var associationsSeed = []domain.Company{
	// Insurance Council of Australia members
	{Name: "Allianz Australia", Industry: domain.IndustryInsurance, Country: "Australia", Website: "allianz.com.au"},
	{Name: "Youi Insurance", Industry: domain.IndustryInsurance, Country: "Australia", Website: "youi.com.au"},
	{Name: "Budget Direct", Industry: domain.IndustryInsurance, Country: "Australia", Website: "budgetdirect.com.au"},
	{Name: "AAMI Insurance", Industry: domain.IndustryInsurance, Country: "Australia", Website: "aami.com.au"},
	{Name: "NRMA Insurance", Industry: domain.IndustryInsurance, Country: "Australia", Website: "nrma.com.au"},
	{Name: "Bupa Australia", Industry: domain.IndustryInsurance, Country: "Australia", Website: "bupa.com.au"},
	{Name: "HCF", Industry: domain.IndustryInsurance, Country: "Australia", Website: "hcf.com.au"},
	{Name: "NIB Health Funds", Industry: domain.IndustryInsurance, Country: "Australia", Website: "nib.com.au"},
	{Name: "AIA Australia", Industry: domain.IndustryInsurance, Country: "Australia", Website: "aia.com.au"},
	{Name: "TAL Life Limited", Industry: domain.IndustryInsurance, Country: "Australia", Website: "tal.com.au"},
	{Name: "Zurich Australia", Industry: domain.IndustryInsurance, Country: "Australia", Website: "zurich.com.au"},
	{Name: "Hollard Insurance", Industry: domain.IndustryInsurance, Country: "Australia", Website: "hollard.com.au"},
	// Financial Services Council NZ members
	{Name: "AA Insurance", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "aainsurance.co.nz"},
	{Name: "Tower Insurance", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "tower.co.nz"},
	{Name: "FMG Insurance", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "fmg.co.nz"},
	{Name: "AMI Insurance", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "ami.co.nz"},
	{Name: "Vero Insurance", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "vero.co.nz"},
	{Name: "Southern Cross Health Society", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "southerncross.co.nz"},
	{Name: "AIA New Zealand", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "aia.co.nz"},
	{Name: "Partners Life", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "partnerslife.co.nz"},
	{Name: "Fidelity Life", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "fidelitylife.co.nz"},
	{Name: "Asteron Life", Industry: domain.IndustryInsurance, Country: "New Zealand", Website: "asteronlife.co.nz"},
}
