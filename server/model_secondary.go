package server

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/zucenko/toxicgrid/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

// ErrStopped is returned by calls made after Loop has returned.
var ErrStopped = errors.New("runner stopped")

// Codec is the frame encoding of an /events subscription. Every event is
// one binary websocket message.
type Codec int

const (
	CodecGob Codec = iota
	CodecMsgpack
)

// ParseCodec reads the codec query parameter; empty means gob.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "", "gob":
		return CodecGob, nil
	case "msgpack":
		return CodecMsgpack, nil
	default:
		return CodecGob, fmt.Errorf("unknown codec %q", name)
	}
}

func (c Codec) Name() string {
	switch c {
	case CodecGob:
		return "gob"
	case CodecMsgpack:
		return "msgpack"
	default:
		return fmt.Sprintf("n/a:%d", c)
	}
}

func (c Codec) Encode(w io.Writer, e model.Event) error {
	if c == CodecMsgpack {
		return msgpack.NewEncoder(w).Encode(&e)
	}
	return gob.NewEncoder(w).Encode(e)
}

func (c Codec) Decode(r io.Reader, e *model.Event) error {
	if c == CodecMsgpack {
		return msgpack.NewDecoder(r).Decode(e)
	}
	return gob.NewDecoder(r).Decode(e)
}

func (ss SubscriberState) Name() string {
	switch ss {
	case SS_NEW:
		return "NEW"
	case SS_LIVE:
		return "LIVE"
	case SS_CLOSED:
		return "CLOSED"
	default:
		return "N/A"
	}
}
