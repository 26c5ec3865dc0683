package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/regvault/internal/auth"
	"github.com/dmitrijs2005/regvault/internal/common"
	"github.com/dmitrijs2005/regvault/internal/storage"
)

// getSimpleText, getTextWithDefault, getPassword and getConfirm are
// indirections used to facilitate testing. They point to interactive input
// helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword
var getConfirm = GetConfirm

// profileFields lists the draft keys in prompt order.
var profileFields = []struct {
	key    string
	prompt string
}{
	{"first_name", "First name"},
	{"last_name", "Last name"},
	{"email", "Email"},
	{"phone", "Phone"},
	{"country", "Country"},
	{"date_of_birth", "Date of birth (YYYY-MM-DD)"},
	{"gender", "Gender (optional)"},
	{"address", "Address (optional)"},
	{"city", "City (optional)"},
	{"postal_code", "Postal code (optional)"},
}

func draftString(d storage.Draft, key string) string {
	if d == nil {
		return ""
	}
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// Register walks the user through the registration form and submits it.
//
// An unfinished draft, when present, pre-fills the prompts; the collected
// profile fields are saved back as the draft before the password stage, so
// an aborted attempt can be resumed later. The password confirmation and the
// terms agreement are checked here and never submitted. On success the new
// session becomes the active one and the draft is discarded.
func (a *App) Register(ctx context.Context) error {
	draft := a.drafts.Load(ctx)
	if len(draft) > 0 {
		resume, err := getConfirm(a.reader, "An unfinished registration was found. Resume it?", os.Stdout)
		if err != nil {
			return err
		}
		if !resume {
			draft = nil
		}
	}

	filled := storage.Draft{}
	for _, f := range profileFields {
		v, err := getTextWithDefault(a.reader, f.prompt, draftString(draft, f.key), os.Stdout)
		if err != nil {
			return err
		}
		filled[f.key] = v
	}
	a.drafts.Save(ctx, filled)

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		fmt.Println("Passwords do not match. Your answers were saved as a draft.")
		return nil
	}

	agreed, err := getConfirm(a.reader, "Do you agree to the terms of service?", os.Stdout)
	if err != nil {
		return err
	}
	if !agreed {
		fmt.Println("Registration requires agreeing to the terms. Your answers were saved as a draft.")
		return nil
	}

	form := auth.RegistrationForm{
		FirstName:   draftString(filled, "first_name"),
		LastName:    draftString(filled, "last_name"),
		Email:       draftString(filled, "email"),
		Password:    string(password),
		Phone:       draftString(filled, "phone"),
		Country:     draftString(filled, "country"),
		DateOfBirth: draftString(filled, "date_of_birth"),
		Gender:      draftString(filled, "gender"),
		Address:     draftString(filled, "address"),
		City:        draftString(filled, "city"),
		PostalCode:  draftString(filled, "postal_code"),
	}

	user, _, err := a.authService.Register(ctx, form)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			fmt.Printf("Invalid form: %s\n", err.Error())
		case errors.Is(err, common.ErrDuplicateUser):
			fmt.Println(err.Error())
		default:
			a.log.Error(ctx, "registration failed", "error", err)
			fmt.Println("Registration failed, please try again.")
		}
		return err
	}

	a.user = user
	fmt.Printf("Success! Welcome, %s.\n", user.FirstName)
	return nil
}
