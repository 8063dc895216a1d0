package testutils

import (
	"encoding/json"
)

func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func MustNoErr(err error) {
	if err != nil {
		panic(err)
	}
}

// MustJSON marshals a request payload, panicking on unsupported values.
func MustJSON(v any) []byte {
	return Must(json.Marshal(v))
}
