package schedbridge

import (
	"github.com/ugorji/go/codec"
)

/*
Codec defines the payload contract for the bridge: every structured
value crossing the boundary travels as an opaque byte buffer produced
by Marshal and consumed by Unmarshal. The bridge never inspects the
buffers; correctness of the encoding is the codec's affair.
*/
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// ContentTyper is implemented by codecs that know the MIME type of
// the buffers they produce. The HTTP transport labels wire bodies
// with it.
type ContentTyper interface {
	ContentType() string
}

// DefaultCodec is the codec used when a Config does not supply one.
// CBOR keeps payloads self-describing and compact on the wire.
var DefaultCodec = NewCodec(new(codec.CborHandle))

// JSONCodec returns a Codec over the JSON handle, for hosts that
// want readable payloads on the wire.
func JSONCodec() Codec {
	return NewCodec(new(codec.JsonHandle))
}

// NewCodec wraps a codec.Handle as a bridge Codec. Handles are safe
// for concurrent use once configured, so one Codec may serve every
// goroutine of a bridge.
func NewCodec(h codec.Handle) Codec {
	return handleCodec{h: h}
}

type handleCodec struct {
	h codec.Handle
}

func (hc handleCodec) Marshal(v interface{}) ([]byte, error) {
	var data []byte
	if err := codec.NewEncoderBytes(&data, hc.h).Encode(v); err != nil {
		return nil, err
	}
	return data, nil
}

func (hc handleCodec) Unmarshal(data []byte, v interface{}) error {
	return codec.NewDecoderBytes(data, hc.h).Decode(v)
}

func (hc handleCodec) ContentType() string {
	if _, ok := hc.h.(*codec.JsonHandle); ok {
		return HTTP_JSON_CONTENT_TYPE
	}
	return HTTP_CONTENT_TYPE
}

// contentTypeOf reports the wire content type for c. Codecs that do
// not implement ContentTyper send the generic binary type.
func contentTypeOf(c Codec) string {
	if typer, ok := c.(ContentTyper); ok {
		return typer.ContentType()
	}
	return HTTP_CONTENT_TYPE
}
