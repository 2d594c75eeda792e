// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Encode serializes v into a URL-safe token:
//
//	base64url( BE32(len(canonical)) || zlib(canonical) )
//
// with no base64 padding. The 4-byte big-endian prefix carries the byte
// length of the canonical text before compression; a decoder can use it to
// pre-size its output buffer. Canonical texts longer than 2^32−1 bytes wrap
// silently in the prefix — an accepted limitation of the format, not an
// error path.
//
// The compressed stream uses the zlib wrapper (RFC 1950) at the library's
// default level, so the token is deterministic for a fixed input and a fixed
// compression library version.
func Encode(v *Value) (string, error) {
	canonical := MarshalCanonical(v)

	var buf bytes.Buffer
	header := make([]byte, 4)
	binary.BigEndian.PutUint32(header, uint32(len(canonical)))
	buf.Write(header)

	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(canonical); err != nil {
		return "", fmt.Errorf("compress canonical text: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("flush compressed stream: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeJSON parses data as a JSON document and encodes it in one step.
func EncodeJSON(data []byte) (string, error) {
	v, err := ParseJSON(data)
	if err != nil {
		return "", err
	}
	return Encode(v)
}
