package value

import (
	"errors"
	"testing"
)

func TestMapCallableUnconstructed(t *testing.T) {
	tests := []struct {
		name string
		m    *MapCallable
	}{
		{name: "zero", m: &MapCallable{}},
		{name: "literal", m: &MapCallable{Lineage: []string{"Point"}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := tc.m
			if got := m.Get("x"); !got.IsNull() {
				t.Errorf("x = %s, want null", got)
			}
			if err := m.Set("x", FromInt(1)); err != nil {
				t.Fatal(err)
			}
			m.Define("id", FromString("a"), true)
			if err := m.Set("id", FromString("b")); !errors.Is(err, ErrReadOnly) {
				t.Errorf("got %v, want ErrReadOnly", err)
			}
			if got := m.Get("x"); !Equal(got, FromInt(1)) {
				t.Errorf("x = %s, want 1", got)
			}
			if got := len(m.Keys()); got != 2 {
				t.Errorf("got %d keys, want 2", got)
			}
		})
	}
	var fixed MapCallable
	fixed.Fixed = true
	if err := fixed.Set("x", FromInt(1)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("fixed zero value: got %v, want ErrUnknownKey", err)
	}
}
