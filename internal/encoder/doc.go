// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package encoder turns a JSON-compatible configuration value into a compact,
// URL-safe textual token.
//
// The pipeline is a single deterministic transformation:
//
//	value → canonical JSON text → 4-byte big-endian length prefix →
//	zlib-compressed payload → unpadded URL-safe base64
//
// Canonical text uses 4-space indentation, insertion key order, and
// ASCII-only output (every rune outside 0x20–0x7E is escaped as \uXXXX),
// so that a fixed input always produces byte-identical text. Because object
// key order is significant, values are represented by the order-preserving
// [Value] type rather than Go maps; [ParseJSON] builds a Value from JSON
// text without disturbing the order of object members.
//
// Number literals are emitted exactly as written in the source document.
// Encoders that reformat numbers (for example, rewriting 1e3 as 1000.0)
// produce a different canonical text, and therefore a different token, for
// such non-minimal literals even though the parsed value is the same.
//
// The main entry points are [ParseJSON], [Encode], and the combined
// [EncodeJSON]. Decoding is intentionally out of scope: the token format is
// documented here so that independent consumers can implement the inverse.
package encoder
