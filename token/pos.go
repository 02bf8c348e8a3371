package token

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps offsets of a source buffer to lines and columns. Newlines
// are indexed on first use.
type PosDoc struct {
	d       []byte
	n       []int
	indexed bool
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

func (p *PosDoc) index() {
	if p.indexed {
		return
	}
	p.indexed = true
	for i := 0; i < len(p.d); {
		j := bytes.IndexByte(p.d[i:], '\n')
		if j == -1 {
			break
		}
		p.n = append(p.n, i+j)
		i += j + 1
	}
}

// LineCol returns the 0-based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	p.index()
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

// Offset returns the offset of a 0-based line and column, clamped to
// the document.
func (p *PosDoc) Offset(line, col int) int {
	p.index()
	off := 0
	if line > 0 {
		if line > len(p.n) {
			return len(p.d)
		}
		off = p.n[line-1] + 1
	}
	return min(off+col, len(p.d))
}

func (p *PosDoc) Bytes() []byte {
	return p.d
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

// LineCol returns the 0-based line and column.
func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

// String reports the line and column 1-based, as error messages do.
func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("offset %d", p.I)
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, line+1, col+1)
}
