package models

// USStateCodes lists the 50 US state postal codes plus DC, used for
// state-coverage counting and catalog validation.
var USStateCodes = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	"DC",
}

// IsUSStateCode reports whether code is a known state code.
func IsUSStateCode(code string) bool {
	for _, s := range USStateCodes {
		if s == code {
			return true
		}
	}
	return false
}
