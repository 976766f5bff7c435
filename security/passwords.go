package security

import "golang.org/x/crypto/bcrypt"

// GerarBcrypt hashes a plaintext password with bcrypt.
// An empty password is passed through unchanged.
func GerarBcrypt(senha string, cost int) (string, error) {
	if senha == "" {
		return senha, nil
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SenhaValida reports whether the plaintext matches the stored hash.
func SenhaValida(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
