// Package views renders the role-gated pages of the Digital Cafe client.
// Every view follows one template: guard on the cached role, fetch from the
// API, render a table, and push validated mutations back. The server scopes
// what each role sees; the guard here is a convenience, not the boundary.
package views

import (
	"errors"
	"fmt"
	"io"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/events"
	"digitalcafe/cafectl/internal/model"
	"digitalcafe/cafectl/internal/session"
)

// ErrForbidden means the cached role does not match the page. It is raised
// before any API call for page data is issued.
var ErrForbidden = errors.New("this page is not available for your account")

var ErrNotSignedIn = errors.New("you are not signed in")

type View struct {
	api     *api.Client
	session *session.Store
	bus     *events.Bus
	out     io.Writer
}

func New(client *api.Client, sess *session.Store, bus *events.Bus, out io.Writer) *View {
	return &View{api: client, session: sess, bus: bus, out: out}
}

func (v *View) requireLogin() error {
	if !v.session.IsLoggedIn() {
		return ErrNotSignedIn
	}
	return nil
}

func (v *View) requireRole(role model.Role) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	if v.session.Role() != role {
		return ErrForbidden
	}
	return nil
}

// actionError keeps the server's own message verbatim and only falls back
// to the per-action text for transport-level failures.
func actionError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrSessionExpired) {
		return err
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return err
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
