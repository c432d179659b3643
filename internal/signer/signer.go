package signer

// Signer interface for signing generated definitions
type Signer interface {
	// SignDetached creates an ASCII-armored detached signature
	SignDetached(data []byte) ([]byte, error)
}
