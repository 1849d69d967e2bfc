package middleware

import (
	"errors"
	"fmt"
	"os"
	"time"

	game_constants "Ruleta/constants/game"

	"github.com/golang-jwt/jwt/v5"
)

/*
 * Table access tokens. Creating or joining a table over HTTP mints a signed
 * JWT binding (userID, tableID, name); the socket.io gateway verifies it on
 * connect and trusts nothing else from the client. The token only proves
 * identity, never role: admin status is re-derived from the stored table on
 * every privileged command.
 */

const DefaultSessionDuration = game_constants.DefaultTableTTL

// TableClaims is the payload embedded in every table access token.
type TableClaims struct {
	TableID string `json:"tableID"`
	Name    string `json:"name"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// SessionDuration reads SESSION_DURATION (e.g. "2h", "90m") and doubles as
// the Redis TTL of the table document, so tokens and room expire together.
func SessionDuration() time.Duration {
	raw := os.Getenv("SESSION_DURATION")
	if raw == "" {
		return DefaultSessionDuration
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return DefaultSessionDuration
	}
	return d
}

// IssueTableToken mints the access token returned by the create/join/rejoin
// endpoints.
func IssueTableToken(userID, tableID, name string) (string, error) {
	now := time.Now()
	claims := TableClaims{
		TableID: tableID,
		Name:    name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration())),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", fmt.Errorf("error signing table token: %w", err)
	}
	return signed, nil
}

// DecodeTableToken verifies the signature and expiry of a table token and
// returns (userID, tableID, name).
func DecodeTableToken(tokenString string) (string, string, string, error) {
	claims := &TableClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", "", "", fmt.Errorf("invalid table token: %w", err)
	}
	if !token.Valid || claims.Subject == "" || claims.TableID == "" {
		return "", "", "", errors.New("invalid table token: missing claims")
	}
	return claims.Subject, claims.TableID, claims.Name, nil
}

// SocketioJWTDecoder extracts and verifies the token from a socket.io
// handshake auth payload (auth: { token: "..." }).
func SocketioJWTDecoder(authData map[string]interface{}) (string, string, string, error) {
	tokenString, exists := authData["token"].(string)
	if !exists || tokenString == "" {
		return "", "", "", errors.New("missing token in handshake auth")
	}
	return DecodeTableToken(tokenString)
}
