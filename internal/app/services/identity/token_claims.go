package identity

import "github.com/golang-jwt/jwt/v4"

// accessTokenClaims are the Entra ID claims worth logging when Graph rejects
// a call: which app the token was minted for and which application roles
// (Bookings.Read.All and so on) it carries.
type accessTokenClaims struct {
	AppID string   `json:"appid"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// inspectAccessToken decodes the token without verifying it. The gateway is
// not the audience; Graph does the verification.
func inspectAccessToken(accessToken string) (*accessTokenClaims, error) {
	claims := &accessTokenClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, claims)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
