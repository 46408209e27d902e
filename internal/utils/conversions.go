package utils

import "strconv"

// ToStringSlice converts a decoded JSON array into strings. Non-string
// scalars are stringified; anything else is skipped.
func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0, len(slice))
	for _, v := range slice {
		switch s := v.(type) {
		case string:
			stringSlice = append(stringSlice, s)
		case float64:
			stringSlice = append(stringSlice, strconv.FormatFloat(s, 'f', -1, 64))
		case bool:
			stringSlice = append(stringSlice, strconv.FormatBool(s))
		}
	}
	return stringSlice
}
