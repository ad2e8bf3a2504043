package crypto

// Sealer protects values the client keeps in local storage (tokens, the
// signed-in user, session cookies) when a storage secret is configured.
//
// Scheme:
//
//	Salt = GenerateSalt()                 stored next to the data, not secret
//	Key  = Argon2id(secret, Salt)         lives only in memory
//	Blob = base64(nonce ‖ AES-GCM(Key, value))
type Sealer interface {
	// Seal encrypts plaintext and returns a base64 blob.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails when the blob was produced with another
	// secret or has been tampered with.
	Open(sealed string) (string, error)
}
