package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"digitalcafe/cafectl/internal/api"
	"digitalcafe/cafectl/internal/model"
	"digitalcafe/cafectl/internal/views"
)

func newProfileUpdateCmd(v *views.View) *cobra.Command {
	var update api.ProfileUpdate
	var academic, work []string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, raw := range academic {
				record, err := parseAcademic(raw)
				if err != nil {
					return err
				}
				update.AcademicInformation = append(update.AcademicInformation, record)
			}
			for _, raw := range work {
				record, err := parseWork(raw)
				if err != nil {
					return err
				}
				update.WorkExperience = append(update.WorkExperience, record)
			}
			return v.UpdateProfile(cmd.Context(), update)
		},
	}
	cmd.Flags().StringVar(&update.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&update.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&update.DOB, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&update.Gender, "gender", "", "gender")
	cmd.Flags().StringVar(&update.Street, "street", "", "street")
	cmd.Flags().StringVar(&update.PlotNo, "plot", "", "plot number")
	cmd.Flags().StringVar(&update.City, "city", "", "city")
	cmd.Flags().StringVar(&update.Pincode, "pincode", "", "pincode")
	cmd.Flags().StringArrayVar(&academic, "academic", nil, "academic record as degree|institution|year, repeatable")
	cmd.Flags().StringArrayVar(&work, "work", nil, "work record as company|role|duration|description, repeatable")
	return cmd
}

func parseAcademic(raw string) (model.AcademicRecord, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return model.AcademicRecord{}, fmt.Errorf("invalid --academic %q, want degree|institution|year", raw)
	}
	return model.AcademicRecord{Degree: parts[0], Institution: parts[1], CompletionYear: parts[2]}, nil
}

func parseWork(raw string) (model.WorkRecord, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 4 {
		return model.WorkRecord{}, fmt.Errorf("invalid --work %q, want company|role|duration|description", raw)
	}
	return model.WorkRecord{Company: parts[0], Role: parts[1], Duration: parts[2], Description: parts[3]}, nil
}
