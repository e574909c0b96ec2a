package user

// PasswordHasher hashes and verifies credentials. The domain only ever
// sees hashes; plain passwords stop at the application boundary.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
