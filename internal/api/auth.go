package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"digitalcafe/cafectl/internal/model"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest creates a staff account (waiter or chef) on behalf of a
// cafe owner, or a cafe owner on behalf of an admin.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleType string `json:"roleType"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Login authenticates and, on success, persists the returned token and user
// as the new session. A rejected login leaves any prior session untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*model.Session, error) {
	return c.doAuth(ctx, "/api/auth/login", loginRequest{Email: email, Password: password})
}

// Signup registers a new customer account and signs it in.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*model.Session, error) {
	return c.doAuth(ctx, "/api/auth/signup", req)
}

// doAuth is the login/signup path. It bypasses the 401 interceptor: a 401
// here means bad credentials, not an expired session.
func (c *Client) doAuth(ctx context.Context, path string, body any) (*model.Session, error) {
	resp, err := c.send(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := serverMessage(resp)
		if msg == "" {
			msg = fmt.Sprintf("authentication failed (status %d)", resp.StatusCode)
		}
		return nil, &AuthError{Status: resp.StatusCode, Message: msg}
	}

	var sess model.Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if sess.Token != "" {
		if err := c.session.Set(sess.Token, sess.User); err != nil {
			return nil, err
		}
	}
	return &sess, nil
}

// Logout tells the server best-effort and clears the local session
// unconditionally, even when the server call fails.
func (c *Client) Logout(ctx context.Context) {
	if resp, err := c.send(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err == nil {
		resp.Body.Close()
	}
	c.session.Clear()
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodPost, "/api/users", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
