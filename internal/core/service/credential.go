package service

import "golang.org/x/crypto/bcrypt"

// CredentialCodec abstracts how a password is stored and checked, so the
// mechanism is swappable without touching the auth service. The demo
// registry uses PlainCredential because its seed fixtures carry cleartext
// passwords; BcryptCredential is the drop-in for a real deployment.
type CredentialCodec interface {
	// Seal converts a plaintext password into its stored form.
	Seal(plain string) (string, error)
	// Verify reports whether the supplied plaintext matches the stored form.
	Verify(stored, supplied string) bool
}

// PlainCredential stores and compares passwords as exact strings.
type PlainCredential struct{}

func (PlainCredential) Seal(plain string) (string, error) { return plain, nil }

func (PlainCredential) Verify(stored, supplied string) bool { return stored == supplied }

// BcryptCredential stores bcrypt hashes.
type BcryptCredential struct {
	Cost int
}

func (c BcryptCredential) Seal(plain string) (string, error) {
	cost := c.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (c BcryptCredential) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}
