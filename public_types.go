package restclient

import "github.com/harborline/restclient/classify"

// Public type aliases so callers handling results can import only this
// package. Resource declarations live in the resource package.
type (
	HTTPInfo     = classify.HTTPInfo
	NetworkError = classify.NetworkError
	Kind         = classify.Kind
)

const (
	KindNoResponse        = classify.KindNoResponse
	KindTransportError    = classify.KindTransportError
	KindStatusCode        = classify.KindStatusCode
	KindCouldNotParseData = classify.KindCouldNotParseData
)
