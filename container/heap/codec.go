// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"bytes"
	"encoding/gob"
	"encoding/json"

	"cloudeng.io/errors"
)

// The codecs serialize the configuration followed by the things in
// breadth-first order and re-establish heap order on decode, so the
// exact slot layout of the source heap does not need to survive the
// trip. The comparator is not serialized; both directions require a
// receiver built by one of the package constructors, and decoding
// keeps that receiver's ordering while the encoded backend and arity
// replace the receiver's.

var errNotConstructed = errors.New("heap was not constructed, use New or NewFunc")

type jsonEncoding[T any] struct {
	Config Config `json:"config"`
	Things []T    `json:"things"`
}

// MarshalJSON implements json.Marshaler. T must itself be
// serializable by encoding/json.
func (h *Heap[T]) MarshalJSON() ([]byte, error) {
	if h.c == nil {
		return nil, errNotConstructed
	}
	return json.Marshal(jsonEncoding[T]{
		Config: h.cfg,
		Things: h.things(),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (h *Heap[T]) UnmarshalJSON(buf []byte) error {
	if h.compare == nil {
		return errNotConstructed
	}
	var enc jsonEncoding[T]
	if err := json.Unmarshal(buf, &enc); err != nil {
		return err
	}
	return h.reload(enc.Config, enc.Things)
}

// GobEncode implements gob.GobEncoder. T must itself be serializable
// by encoding/gob.
func (h *Heap[T]) GobEncode() ([]byte, error) {
	if h.c == nil {
		return nil, errNotConstructed
	}
	buf := bytes.Buffer{}
	enc := gob.NewEncoder(&buf)
	errs := errors.M{}
	errs.Append(enc.Encode(h.cfg))
	errs.Append(enc.Encode(h.things()))
	return buf.Bytes(), errs.Err()
}

// GobDecode implements gob.GobDecoder.
func (h *Heap[T]) GobDecode(buf []byte) error {
	if h.compare == nil {
		return errNotConstructed
	}
	dec := gob.NewDecoder(bytes.NewBuffer(buf))
	var (
		cfg    Config
		things []T
	)
	errs := errors.M{}
	errs.Append(dec.Decode(&cfg))
	errs.Append(dec.Decode(&things))
	if err := errs.Err(); err != nil {
		return err
	}
	return h.reload(cfg, things)
}

// things returns the occupied things in breadth-first order.
func (h *Heap[T]) things() []T {
	out := make([]T, 0, h.Len())
	for v := range h.c.walk() {
		out = append(out, v)
	}
	return out
}

// reload replaces the contents of h with things laid out per cfg. The
// receiver keeps its comparator, so Max in cfg is overridden with the
// receiver's to keep Config consistent with the live ordering.
func (h *Heap[T]) reload(cfg Config, things []T) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Max = h.cfg.Max
	h.cfg = cfg
	h.c = newCore(h.cfg, h.compare, max(len(things), 1))
	h.c.load(things)
	return nil
}
