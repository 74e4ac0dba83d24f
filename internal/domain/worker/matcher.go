package worker

import "strings"

// FilterAll is the sentinel meaning "no service filter".
const FilterAll = "all"

// HasFilter reports whether a service query parameter actually
// narrows the result set.
func HasFilter(filter string) bool {
	return filter != "" && filter != FilterAll
}

// MatchesService is the service-key predicate used when listing
// workers. It is deliberately loose so key variants still match a
// plainer filter (`ac_service` matches `service`):
//
//  1. key equals the filter, case-insensitive
//  2. key ends with `_<filter>`, case-insensitive
//  3. key with underscores replaced by spaces contains the filter
//     as a case-insensitive substring
func MatchesService(key, filter string) bool {
	k := strings.ToLower(key)
	f := strings.ToLower(filter)

	if k == f {
		return true
	}
	if strings.HasSuffix(k, "_"+f) {
		return true
	}
	return strings.Contains(strings.ReplaceAll(k, "_", " "), f)
}
