package resource

import (
	"encoding/json"

	"github.com/harborline/restclient/classify"
)

// JSON returns a parser that unmarshals the payload into M.
func JSON[M any]() classify.ParseFunc[M] {
	return func(b []byte) (M, error) {
		var m M
		if err := json.Unmarshal(b, &m); err != nil {
			var zero M
			return zero, err
		}
		return m, nil
	}
}

// Text returns the payload as a string. It never fails.
func Text() classify.ParseFunc[string] {
	return func(b []byte) (string, error) { return string(b), nil }
}

// Raw returns a copy of the payload untouched. It never fails.
func Raw() classify.ParseFunc[[]byte] {
	return func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	}
}
