package resource

import "net/http"

// MergeHeaders combines two header maps into a new one. Fields present in
// override replace the base field entirely (all values); base fields with no
// override are copied through. Neither input is modified.
func MergeHeaders(base, override http.Header) http.Header {
	out := make(http.Header, len(base)+len(override))
	for k, vs := range base {
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	for k, vs := range override {
		out[http.CanonicalHeaderKey(k)] = append([]string(nil), vs...)
	}
	return out
}
