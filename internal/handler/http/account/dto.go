// Package account provides HTTP handlers for registration, login and
// the authenticated profile endpoint.
package account

import "newskeep/internal/handler/http/article"

// RegisterRequest is the JSON body for POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned on successful login.
type LoginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// ProfileResponse is the JSON body for GET /profile.
type ProfileResponse struct {
	Email    string        `json:"email"`
	Name     string        `json:"name"`
	Articles []article.DTO `json:"articles"`
}
