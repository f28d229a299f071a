package utils

import "strings"

// ParseCityCountry guesses a city and country from a formatted address such
// as "123 Queen St W, Toronto, ON M5H 2M9, Canada". It is a heuristic: the
// country is the last comma-separated segment and the city is the first word
// of the second-to-last one. Short or malformed addresses give empty values,
// and multi-word cities or postcode-first segments come out wrong.
func ParseCityCountry(address string) (city, country string) {
	var parts []string
	for _, p := range strings.Split(address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	if len(parts) >= 1 {
		country = parts[len(parts)-1]
	}
	if len(parts) >= 2 {
		if fields := strings.Fields(parts[len(parts)-2]); len(fields) > 0 {
			city = fields[0]
		}
	}
	return city, country
}
