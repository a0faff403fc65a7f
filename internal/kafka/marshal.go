package kafka

import "encoding/json"

// MustMarshal is for values we build ourselves; failing to encode them is a
// programming error.
func MustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
