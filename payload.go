package schedbridge

import (
	"fmt"
)

// DecodeError reports a command payload that failed to decode. The
// failed operation never reached the driver. Index is the position of
// the bad payload within its array argument, or -1 for a single
// payload.
type DecodeError struct {
	Kind  string
	Index int
	Err   error
}

func (err *DecodeError) Error() string {
	if err.Index < 0 {
		return fmt.Sprintf("decode %s payload: %v", err.Kind, err.Err)
	}
	return fmt.Sprintf("decode %s payload [%d]: %v", err.Kind, err.Index, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}

func decodePayload[T any](c Codec, data []byte, kind string) (*T, error) {
	v := new(T)
	if err := c.Unmarshal(data, v); err != nil {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: err}
	}
	return v, nil
}

// decodeOptionalPayload treats a nil or empty buffer as an absent
// value rather than a decode failure.
func decodeOptionalPayload[T any](c Codec, data []byte, kind string) (*T, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return decodePayload[T](c, data, kind)
}

// decodePayloads decodes an array argument all-or-nothing, in input
// order. An empty input is a valid empty collection.
func decodePayloads[T any](c Codec, payloads [][]byte, kind string) ([]*T, error) {
	out := make([]*T, 0, len(payloads))
	for i, data := range payloads {
		v := new(T)
		if err := c.Unmarshal(data, v); err != nil {
			return nil, &DecodeError{Kind: kind, Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
