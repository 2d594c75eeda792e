// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ParseJSON parses data as a single JSON document and returns the
// order-preserving [Value] representation.
//
// The standard library decoder is driven token by token instead of
// unmarshaling into map[string]any: Go maps would lose the original key
// order, which is significant for the canonical serialization. Numbers are
// captured as raw literals (json.Number), repeated object keys follow
// dictionary update semantics (first position, last value), and any content
// after the first document is rejected.
func ParseJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	v, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil, ErrTrailingData
	}

	return v, nil
}

// parseValue converts the already-read token tok, consuming further tokens
// from dec when tok opens a container.
func parseValue(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			// Unbalanced closers are caught by the decoder before we get
			// here; this is unreachable with a conforming json.Decoder.
			return nil, fmt.Errorf("%w: unexpected %q", ErrInvalidJSON, t.String())
		}
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return Str(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported token %T", ErrInvalidJSON, tok)
	}
}

func parseObject(dec *json.Decoder) (*Value, error) {
	obj := Obj()

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is %T, not string", ErrInvalidJSON, keyTok)
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}

		obj.put(key, val)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return obj, nil
}

func parseArray(dec *json.Decoder) (*Value, error) {
	arr := Arr()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		item, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr.arrVal = append(arr.arrVal, item)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	return arr, nil
}
