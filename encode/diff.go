package encode

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/signadot/ffl/value"
)

// Change is a difference between two values at Path. From is nil for
// an insertion and To is nil for a deletion.
type Change struct {
	Path     string
	From, To *value.Value
}

func (c *Change) String() string {
	switch {
	case c.From == nil:
		return fmt.Sprintf("%s: + %s", c.Path, c.To)
	case c.To == nil:
		return fmt.Sprintf("%s: - %s", c.Path, c.From)
	}
	return fmt.Sprintf("%s: %s -> %s", c.Path, c.From, c.To)
}

// Changes lists the differences between from and to. Lists are
// aligned by a diff of their elements, so an insertion in the middle
// of a list is a single change. Maps with keys other than strings are
// addressed with the key's literal text in brackets.
func Changes(from, to value.Value) []Change {
	var res []Change
	changes(&res, "$", from, to)
	return res
}

func changes(res *[]Change, path string, from, to value.Value) {
	if from.Kind() != to.Kind() {
		*res = append(*res, Change{Path: path, From: &from, To: &to})
		return
	}
	switch from.Kind() {
	case value.ListKind:
		listChanges(res, path, from, to)
	case value.MapKind:
		mapChanges(res, path, from, to)
	default:
		if !value.Equal(from, to) {
			*res = append(*res, Change{Path: path, From: &from, To: &to})
		}
	}
}

func keyPath(path string, k value.Value) string {
	if s, err := k.AsString(); err == nil {
		return value.FieldPath(path, s)
	}
	return path + "[" + k.String() + "]"
}

func mapChanges(res *[]Change, path string, from, to value.Value) {
	from.Each(func(k, fv value.Value) bool {
		if !to.Has(k) {
			*res = append(*res, Change{Path: keyPath(path, k), From: &fv})
			return true
		}
		tv, _ := to.Get(k)
		changes(res, keyPath(path, k), fv, tv)
		return true
	})
	to.Each(func(k, tv value.Value) bool {
		if !from.Has(k) {
			*res = append(*res, Change{Path: keyPath(path, k), To: &tv})
		}
		return true
	})
}

// listChanges summarizes each element as a rune, leaves by kind and
// text and containers by kind, and diffs the rune sequences. Elements
// aligned as equal are compared recursively.
func listChanges(res *[]Change, path string, from, to value.Value) {
	m := map[string]rune{}
	fromRunes := summarize(m, from)
	toRunes := summarize(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		for range n {
			switch d.Type {
			case diffpatch.DiffDelete:
				fv, _ := from.Index(fi)
				*res = append(*res, Change{Path: value.IndexPath(path, fi), From: &fv})
				fi++
			case diffpatch.DiffInsert:
				tv, _ := to.Index(ti)
				*res = append(*res, Change{Path: value.IndexPath(path, ti), To: &tv})
				ti++
			case diffpatch.DiffEqual:
				fv, _ := from.Index(fi)
				tv, _ := to.Index(ti)
				changes(res, value.IndexPath(path, ti), fv, tv)
				fi++
				ti++
			}
		}
	}
}

func summarize(m map[string]rune, v value.Value) []rune {
	rs := make([]rune, v.Len())
	for i := range rs {
		e, _ := v.Index(i)
		sum := e.Kind().String()
		if e.Kind().IsLeaf() {
			sum += "-" + e.String()
		}
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// DiffLines renders from and to and returns a line diff, each line
// prefixed by "  ", "- " or "+ ". It returns "" when the renderings
// are the same.
func DiffLines(from, to value.Value, colors bool) string {
	a, b := MustString(from)+"\n", MustString(to)+"\n"
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var buf strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
			if colors {
				paint = color.New(color.FgRed).Sprint
			}
		case diffpatch.DiffInsert:
			prefix = "+ "
			if colors {
				paint = color.New(color.FgGreen).Sprint
			}
		}
		for _, ln := range strings.SplitAfter(strings.TrimSuffix(d.Text, "\n"), "\n") {
			buf.WriteString(paint(prefix+strings.TrimSuffix(ln, "\n")) + "\n")
		}
	}
	return buf.String()
}
