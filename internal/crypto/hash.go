package crypto

import "golang.org/x/crypto/bcrypt"

// HashSecret hashes a password or refresh token with bcrypt at the default
// cost. The same scheme is used for both so verification is uniform.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifySecret reports whether secret matches the given bcrypt hash.
func VerifySecret(secret, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(secret)) == nil
}
