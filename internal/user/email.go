package user

import "strings"

// EmailDomain is the domain every computed address belongs to.
const EmailDomain = "wps-allianz.de"

// CalculateEmail derives the deterministic address for a user. Internal
// users get firstname.lastname@domain; external users get the external_
// prefix with lastname and firstname swapped. The swap is a fixed rule of
// the naming scheme, not a mistake.
func CalculateEmail(u User) string {
	first := sanitizeName(u.FirstName)
	last := sanitizeName(u.LastName)

	if u.Type == TypeExternal {
		return "external_" + last + "." + first + "@" + EmailDomain
	}

	return first + "." + last + "@" + EmailDomain
}

// sanitizeName lowercases and strips spaces, so "First Name" becomes
// "firstname".
func sanitizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}
