package api

import (
	"context"
	"net/http"

	"digitalcafe/cafectl/internal/model"
)

type ProfileUpdate struct {
	FirstName           string                 `json:"firstName,omitempty"`
	LastName            string                 `json:"lastName,omitempty"`
	DOB                 string                 `json:"dob,omitempty"`
	Gender              string                 `json:"gender,omitempty"`
	Street              string                 `json:"street,omitempty"`
	PlotNo              string                 `json:"plotNo,omitempty"`
	City                string                 `json:"city,omitempty"`
	Pincode             string                 `json:"pincode,omitempty"`
	AcademicInformation []model.AcademicRecord `json:"academicInformation,omitempty"`
	WorkExperience      []model.WorkRecord     `json:"workExperience,omitempty"`
}

func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) Profile(ctx context.Context) (*model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodGet, "/api/users/profile", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodPut, "/api/users/profile", nil, update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
