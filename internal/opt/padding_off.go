//go:build parsearch_disable_padding

package opt

// PaddedInt_ is a plain int.
// Padding is disabled via the parsearch_disable_padding build tag.
type PaddedInt_ struct {
	N int
}

const Padded_ = false
