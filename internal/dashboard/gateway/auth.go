package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// TokenResponse is the payload of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// VerifyResponse reports whether a stored token is still accepted.
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

// Login exchanges credentials for a token. The endpoint takes a classic
// form-encoded body rather than JSON.
func (c *Client) Login(ctx context.Context, username, password string) (TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return TokenResponse{}, fmt.Errorf("gateway: build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return TokenResponse{}, fmt.Errorf("gateway: login: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return TokenResponse{}, decodeError(res)
	}
	var token TokenResponse
	if err := json.NewDecoder(res.Body).Decode(&token); err != nil {
		return TokenResponse{}, fmt.Errorf("gateway: decode token: %w", err)
	}
	return token, nil
}

// VerifyToken asks the backend whether token is still valid. Network
// failures surface as errors; a definite "no" comes back as Valid=false or
// ErrUnauthenticated depending on the server response.
func (c *Client) VerifyToken(ctx context.Context, token string) (VerifyResponse, error) {
	var out VerifyResponse
	if err := c.do(ctx, http.MethodGet, "/auth/verify_token/"+url.PathEscape(token), nil, &out); err != nil {
		return VerifyResponse{}, err
	}
	return out, nil
}
