package value

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
)

// ApplyPatch applies an RFC 6902 JSON patch to the JSON form of v.
func ApplyPatch(v Value, patch []byte) (Value, error) {
	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return Value{}, fmt.Errorf("decoding patch: %w", err)
	}
	doc, err := Serialize(v)
	if err != nil {
		return Value{}, err
	}
	res, err := p.Apply(doc)
	if err != nil {
		return Value{}, fmt.Errorf("applying patch: %w", err)
	}
	return Deserialize(res)
}

// MergePatch applies an RFC 7386 merge patch to the JSON form of v.
func MergePatch(v Value, patch []byte) (Value, error) {
	doc, err := Serialize(v)
	if err != nil {
		return Value{}, err
	}
	res, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		return Value{}, fmt.Errorf("merge patch: %w", err)
	}
	return Deserialize(res)
}

// CreateMergePatch returns the merge patch turning from into to.
func CreateMergePatch(from, to Value) ([]byte, error) {
	a, err := Serialize(from)
	if err != nil {
		return nil, err
	}
	b, err := Serialize(to)
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
