package model

import "strings"

// LedgerSeparator terminates every ledger block.
var LedgerSeparator = strings.Repeat("=", 40)

// MaskedPassword replaces the password in ledger blocks rendered without reveal.
const MaskedPassword = "********"

// LedgerEntry is one submission in the plain-text credentials ledger format.
type LedgerEntry struct {
	GitHubLink string
	DBUser     string
	Password   string
	DBName     string
	Domain     string
}

// Block renders the entry as five labeled lines followed by the separator line.
func (e LedgerEntry) Block() string {
	var b strings.Builder
	b.WriteString("GitHub Link: " + e.GitHubLink + "\n")
	b.WriteString("Database User: " + e.DBUser + "\n")
	b.WriteString("User Password: " + e.Password + "\n")
	b.WriteString("Database Name: " + e.DBName + "\n")
	b.WriteString("Domain: " + e.Domain + "\n")
	b.WriteString(LedgerSeparator + "\n")
	return b.String()
}
