// Package stormcodec gathers the codecs that can be used to encode records in a Storm database.
package stormcodec

import (
	"bytes"
	"sort"

	"github.com/asdine/storm/v3/codec"
	"github.com/asdine/storm/v3/codec/gob"
	"github.com/asdine/storm/v3/codec/json"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/pkg/errors"
	ucodec "github.com/ugorji/go/codec"
)

var (
	// CBOR encodes to and decodes from CBOR (Concise Binary Object Representation).
	// https://tools.ietf.org/html/rfc7049
	CBOR codec.MarshalUnmarshaler = &ugorji{name: "cbor", handle: &ucodec.CborHandle{}}
	// Binc encodes to and decodes from Binc.
	// See https://github.com/ugorji/binc
	Binc codec.MarshalUnmarshaler = &ugorji{name: "binc", handle: &ucodec.BincHandle{}}

	registry = map[string]codec.MarshalUnmarshaler{
		msgpack.Codec.Name(): msgpack.Codec,
		json.Codec.Name():    json.Codec,
		gob.Codec.Name():     gob.Codec,
		CBOR.Name():          CBOR,
		Binc.Name():          Binc,
	}
)

// ByName returns the codec registered with the given name.
func ByName(name string) (codec.MarshalUnmarshaler, error) {
	c, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown storm codec %q", name)
	}
	return c, nil
}

// Names returns the sorted list of registered codecs.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type ugorji struct {
	name   string
	handle ucodec.Handle
}

func (c *ugorji) Marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := ucodec.NewEncoder(&b, c.handle)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (c *ugorji) Unmarshal(b []byte, v any) error {
	dec := ucodec.NewDecoder(bytes.NewReader(b), c.handle)
	return dec.Decode(v)
}

func (c *ugorji) Name() string {
	return c.name
}
