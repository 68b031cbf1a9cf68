// file: model/token.go

package model

// TokenPair is the signed access/refresh pair returned from a login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenIssuance is the server-side record of the most recent issuance per
// user. At most one row exists per username; a new login overwrites it,
// which invalidates every token issued before that moment.
type TokenIssuance struct {
	Username  string `json:"username"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
