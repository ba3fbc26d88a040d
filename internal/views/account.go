package views

import (
	"context"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
)

func (v *View) Login(ctx context.Context, form forms.Login) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	sess, err := v.api.Login(ctx, form.Email, form.Password)
	if err != nil {
		return actionError(err, "login failed")
	}
	if sess.User != nil {
		v.printf("Signed in as %s (%s)\n", sess.User.Name, sess.User.Role())
	} else {
		v.printf("Signed in.\n")
	}
	return nil
}

func (v *View) Register(ctx context.Context, form forms.Signup) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	sess, err := v.api.Signup(ctx, api.SignupRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		return actionError(err, "signup failed")
	}
	if sess.User != nil {
		v.printf("Account created. Signed in as %s.\n", sess.User.Name)
	} else {
		v.printf("Account created.\n")
	}
	return nil
}

// Logout always leaves the client signed out, even when the server call
// fails.
func (v *View) Logout(ctx context.Context) {
	v.api.Logout(ctx)
	v.printf("Signed out.\n")
}

func (v *View) Whoami() {
	user := v.session.User()
	if user == nil {
		v.printf("Not signed in.\n")
		return
	}
	v.printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role())
}
