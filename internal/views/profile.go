package views

import (
	"context"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/forms"
	"digitalcafe/cafectl/internal/model"
)

func (v *View) Profile(ctx context.Context) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	profile, err := v.api.Profile(ctx)
	if err != nil {
		return actionError(err, "failed to load profile")
	}

	v.printf("Name:    %s\n", profile.Name)
	v.printf("Email:   %s\n", profile.Email)
	v.printf("Role:    %s\n", model.ParseRole(profile.RoleType))
	if profile.DOB != "" {
		v.printf("DOB:     %s\n", profile.DOB)
	}
	if profile.City != "" || profile.Street != "" {
		v.printf("Address: %s %s %s %s\n", orDash(profile.PlotNo), orDash(profile.Street), orDash(profile.City), orDash(profile.Pincode))
	}

	if len(profile.AcademicInformation) > 0 {
		v.printf("\nAcademic information\n")
		rows := make([][]string, 0, len(profile.AcademicInformation))
		for _, a := range profile.AcademicInformation {
			rows = append(rows, []string{a.Degree, a.Institution, a.CompletionYear})
		}
		v.table([]string{"Degree", "Institution", "Year"}, rows)
	}
	if len(profile.WorkExperience) > 0 {
		v.printf("\nWork experience\n")
		rows := make([][]string, 0, len(profile.WorkExperience))
		for _, w := range profile.WorkExperience {
			rows = append(rows, []string{w.Company, w.Role, w.Duration})
		}
		v.table([]string{"Company", "Role", "Duration"}, rows)
	}
	return nil
}

// UpdateProfile saves the edits and refreshes the cached user record so the
// navigation picks up a changed name without a new login.
func (v *View) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	if err := v.requireLogin(); err != nil {
		return err
	}
	if err := forms.Validate(forms.Profile{DOB: update.DOB, Pincode: update.Pincode}); err != nil {
		return err
	}
	profile, err := v.api.UpdateProfile(ctx, update)
	if err != nil {
		return actionError(err, "failed to save profile")
	}

	if user := v.session.User(); user != nil && (profile.Name != "" || profile.Email != "") {
		if profile.Name != "" {
			user.Name = profile.Name
		}
		if profile.Email != "" {
			user.Email = profile.Email
		}
		if profile.RoleType != "" {
			user.RoleType = profile.RoleType
		}
		if err := v.session.Set(v.session.Token(), user); err != nil {
			return err
		}
	}
	v.printf("Profile updated successfully.\n")
	return nil
}
