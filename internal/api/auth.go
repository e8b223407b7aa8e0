package api

import (
	"fmt"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(email, password string) (string, error) {
	var out loginResponse
	err := c.do(http.MethodPost, c.url("auth", "login"), loginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("login succeeded but no access token was returned")
	}
	return out.AccessToken, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. The caller still needs to log in afterwards.
func (c *Client) Register(username, email, password string) error {
	req := registerRequest{Username: username, Email: email, Password: password}
	return c.do(http.MethodPost, c.url("auth", "register"), req, nil)
}

// Me returns the account behind the current credential.
func (c *Client) Me() (*User, error) {
	var u User
	if err := c.do(http.MethodGet, c.url("auth", "me"), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
