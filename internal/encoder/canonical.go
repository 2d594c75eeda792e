// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import (
	"bytes"
	"fmt"
)

// indentUnit is the fixed canonical indentation step.
const indentUnit = "    "

// MarshalCanonical renders v as canonical JSON text: 4-space indentation,
// members in insertion order, ": " after keys, "," between items, empty
// containers as "{}" / "[]", and ASCII-only strings. The result has no
// trailing newline.
//
// The output is byte-for-byte deterministic for a given value, which is what
// makes the final token deterministic.
func MarshalCanonical(v *Value) []byte {
	var buf bytes.Buffer
	writeValue(&buf, v, 0)
	return buf.Bytes()
}

func writeValue(buf *bytes.Buffer, v *Value, depth int) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.numVal)
	case KindString:
		writeString(buf, v.strVal)
	case KindArray:
		writeArray(buf, v.arrVal, depth)
	case KindObject:
		writeObject(buf, v.objVal, depth)
	}
}

func writeObject(buf *bytes.Buffer, members []Member, depth int) {
	if len(members) == 0 {
		buf.WriteString("{}")
		return
	}

	buf.WriteString("{\n")
	for i, m := range members {
		writeIndent(buf, depth+1)
		writeString(buf, m.Key)
		buf.WriteString(": ")
		writeValue(buf, m.Value, depth+1)
		if i < len(members)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte('}')
}

func writeArray(buf *bytes.Buffer, items []*Value, depth int) {
	if len(items) == 0 {
		buf.WriteString("[]")
		return
	}

	buf.WriteString("[\n")
	for i, item := range items {
		writeIndent(buf, depth+1)
		writeValue(buf, item, depth+1)
		if i < len(items)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	writeIndent(buf, depth)
	buf.WriteByte(']')
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString(indentUnit)
	}
}

// writeString emits s as an ASCII-only JSON string literal. Printable ASCII
// passes through, the conventional short escapes are used where JSON defines
// them, and every other rune becomes \uXXXX (as a surrogate pair above the
// BMP), matching the reference tool's ensure-ASCII output.
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			switch {
			case r >= 0x20 && r <= 0x7e:
				buf.WriteByte(byte(r))
			case r > 0xffff:
				r -= 0x10000
				fmt.Fprintf(buf, `\u%04x\u%04x`, 0xd800+(r>>10), 0xdc00+(r&0x3ff))
			default:
				fmt.Fprintf(buf, `\u%04x`, r)
			}
		}
	}
	buf.WriteByte('"')
}
