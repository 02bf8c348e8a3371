// Package value provides the runtime value representation of the
// formula language.
//
// # Overview
//
// A Value is a small tagged union. Scalars (null, bool, int, decimal) are
// held inline; strings, lists, maps, functions and host object references
// are held behind a shared payload. Copying a Value copies the handle, not
// the payload, so Values are cheap to pass around and store in containers.
//
// # Kinds
//
//   - NullKind: the null value, also the zero Value
//   - BoolKind: true or false
//   - IntKind: a signed 64 bit integer
//   - DecimalKind: a fixed point number, see [Decimal]
//   - StringKind: immutable text
//   - ListKind: an ordered sequence of Values
//   - MapKind: unique Value keys to Values, kept in key order
//   - CallableKind: a reference to a host object, see [Callable]
//   - FunctionKind: a closure, see [Function]
//
// # Sharing and mutation
//
// Payloads are never modified in place. The mutating methods (SetIndex,
// Append, SetKey, DeleteKey) replace the payload of the receiving handle
// with a modified copy, so any other holder of the same payload keeps
// seeing the old contents. Payloads are reclaimed by the garbage
// collector once unreachable.
//
// # Coercion
//
// The narrow accessors (AsInt, AsDecimal, AsBool, AsString, AsList,
// AsMap) only apply these implicit conversions:
//
//   - null converts to the default of the requested kind
//   - int and decimal convert to one another, truncating toward zero
//   - bool converts to 0 or 1 when a number is requested
//
// Any other mismatch is a *TypeError.
//
// # Ordering
//
// [Compare] defines a total order over all Values: kinds are ranked
// null < bool < number < string < list < map < object < function,
// ints and decimals compare numerically with each other, and containers
// compare lexically. Map keys use this order, so any Value can be a key.
//
// # Serialization
//
// [Serialize] and [Deserialize] use a canonical JSON form in which
// decimals always carry a fractional part and ints never do, so both
// round trip exactly. Maps with non-string keys are written as
// {"@pairs": [[k, v], ...]}. A CBOR form is available through
// [EncodeCBOR] and [DecodeCBOR].
package value
