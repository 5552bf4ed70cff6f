package common

// WipeByteArray overwrites b with zeros. Used for plaintext passwords read
// from the terminal. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
