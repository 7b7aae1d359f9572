package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLine is the cache line size of the build target in bytes, as
// reported by golang.org/x/sys/cpu. Hot per-worker slots are padded to it.
const CacheLine = unsafe.Sizeof(cpu.CacheLinePad{})
