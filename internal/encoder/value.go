// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package encoder

import "strconv"

// Kind identifies which variant of the JSON data model a [Value] holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object. Objects are stored as a
// member slice, not a map, because insertion order is part of the canonical
// serialization and therefore of the final token.
type Member struct {
	Key   string
	Value *Value
}

// Value is a tagged variant over the JSON data model:
// null, bool, number, string, array, or object.
//
// Numbers keep the source JSON literal verbatim (e.g. "1", "-4.5e7") so that
// serializing a parsed document reproduces the digits exactly as written,
// independent of any float round-trip.
type Value struct {
	kind Kind

	boolVal bool
	numVal  string
	strVal  string
	arrVal  []*Value
	objVal  []Member
}

// Null returns the null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) *Value {
	return &Value{kind: KindBool, boolVal: b}
}

// Number returns a numeric value holding the given JSON number literal.
// The literal is emitted into the canonical text unchanged; callers
// constructing values programmatically are responsible for passing a valid
// JSON number.
func Number(literal string) *Value {
	return &Value{kind: KindNumber, numVal: literal}
}

// Int returns a numeric value for an integer.
func Int(n int64) *Value {
	return Number(strconv.FormatInt(n, 10))
}

// Float returns a numeric value for a float, formatted with the shortest
// representation that round-trips.
func Float(f float64) *Value {
	return Number(strconv.FormatFloat(f, 'g', -1, 64))
}

// Str returns a string value.
func Str(s string) *Value {
	return &Value{kind: KindString, strVal: s}
}

// Arr returns an array value holding the given items in order.
func Arr(items ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: items}
}

// Obj returns an object value holding the given members in order.
func Obj(members ...Member) *Value {
	return &Value{kind: KindObject, objVal: members}
}

// Kind reports which variant v holds.
func (v *Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. Valid only for KindBool.
func (v *Value) Bool() bool {
	return v.boolVal
}

// Number returns the JSON number literal. Valid only for KindNumber.
func (v *Value) Number() string {
	return v.numVal
}

// Str returns the string payload. Valid only for KindString.
func (v *Value) Str() string {
	return v.strVal
}

// Items returns the array elements. Valid only for KindArray.
func (v *Value) Items() []*Value {
	return v.arrVal
}

// Members returns the object members in insertion order. Valid only for
// KindObject.
func (v *Value) Members() []Member {
	return v.objVal
}

// put inserts or replaces an object member. A repeated key keeps the
// position of its first occurrence and takes the latest value, matching the
// reference tool's dictionary semantics.
func (v *Value) put(key string, val *Value) {
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			v.objVal[i].Value = val
			return
		}
	}
	v.objVal = append(v.objVal, Member{Key: key, Value: val})
}
