//go:build !parsearch_disable_padding

package opt

import (
	"unsafe"
)

// PaddedInt_ is an int that occupies a whole cache line, so slots written
// by different workers never share a line.
// Use: go build -tags=parsearch_disable_padding to pack them tightly.
type PaddedInt_ struct {
	N int
	_ [(CacheLine - unsafe.Sizeof(int(0))%CacheLine) % CacheLine]byte
}

const Padded_ = true
