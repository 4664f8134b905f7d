package navidrome

import (
	"context"
	"fmt"
	"net/http"
)

// AuthService provides authentication operations for the Navidrome API.
type AuthService struct {
	client *Client
}

// LoginResponse is the body returned by a successful /auth/login.
type LoginResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	IsAdmin       bool   `json:"isAdmin"`
	Token         string `json:"token"`
	SubsonicSalt  string `json:"subsonicSalt"`
	SubsonicToken string `json:"subsonicToken"`
}

// Session builds the credentials for subsequent requests.
func (l *LoginResponse) Session() *Session {
	return &Session{
		Token: l.Token,
		Subsonic: SubsonicCredentials{
			Username: l.Username,
			Token:    l.SubsonicToken,
			Salt:     l.SubsonicSalt,
		},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges a username and password for API credentials.
//
// A rejected login is returned as *Error carrying the server's response
// text. The returned session is not installed on the client; call
// SetSession for that.
//
// Example:
//
//	login, err := client.Auth().Login(ctx, "admin", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.SetSession(login.Session())
func (a *AuthService) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	data, err := a.client.call(ctx, http.MethodPost, pathLogin, nil, nil, loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	var login LoginResponse
	if err := decode(data, &login, "login response", nil); err != nil {
		return nil, err
	}

	if login.Token == "" {
		return nil, fmt.Errorf("%w: login response has no token", ErrDecode)
	}
	if login.Username == "" {
		login.Username = username
	}

	return &login, nil
}
