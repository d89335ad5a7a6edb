package mathutil

// Bit converts a boolean predicate into its 0/1 integer value,
// so that comparison results can feed arithmetic directly.
func Bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Mask64 returns all-one bits if b is true, and zero otherwise.
func Mask64(b bool) uint64 {
	return -Bit(b)
}
