package auth

// TokenPair is a freshly generated API token and the bcrypt hash to configure
type TokenPair struct {
	Token string `json:"token"`
	Hash  string `json:"hash"`
}
