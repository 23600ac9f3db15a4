package token

import (
	"fmt"
	"strconv"
)

// Pos locates a token or error within the path text being tokenized.
type Pos struct {
	Off int
	src []byte
}

func newPos(src []byte, off int) *Pos {
	return &Pos{Off: off, src: src}
}

func (p *Pos) String() string {
	lo := max(0, p.Off-5)
	hi := min(p.Off+5, len(p.src))
	sample := strconv.Quote(string(p.src[lo:hi]))
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.Off)
}
