package api

import "context"

// LoginRequest is the credential exchange payload.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse carries the access token and the minimal profile the server
// returns alongside it.
type LoginResponse struct {
	Token  string `json:"token"`
	ID     int64  `json:"id"`
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

// Login exchanges credentials for a token and profile. The request carries
// no bearer header because no token exists yet; the client simply finds the
// token source empty.
func (c *Client) Login(ctx context.Context, email, senha string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.postJSON(ctx, "/api/auth/login", LoginRequest{Email: email, Senha: senha}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
