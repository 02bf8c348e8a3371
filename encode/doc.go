// Package encode renders values as formula language literals, JSON or
// YAML, optionally colored, and diffs their renderings.
//
// # Usage
//
//	v := value.FromMap(map[string]value.Value{
//	    "name": value.FromString("alice"),
//	    "hp":   value.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
//	// one line JSON
//	err = encode.Encode(v, os.Stdout, encode.EncodeFormat(encode.JSONFormat), encode.EncodeWire(true))
//
// # Related Packages
//
//   - github.com/signadot/ffl/value - values
//   - github.com/signadot/ffl/token - tokens, which Colors also colors
package encode
