package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/regvault/internal/auth"
	"github.com/dmitrijs2005/regvault/internal/common"
)

// Login prompts the user for credentials and tries to authenticate.
//
// The lockout is consulted first: while it is active the prompt is refused
// outright. A failed attempt bumps the failure counter; a successful one
// resets it and makes the authenticated user the active session.
//
// The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	if st := a.tracker.Check(ctx); st.Locked {
		remaining := time.Until(time.UnixMilli(st.LockoutEnd)).Round(time.Second)
		fmt.Printf("Too many failed attempts. Try again in %s.\n", remaining)
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, _, err := a.authService.Login(ctx, auth.Credentials{Email: email, Password: string(password)})
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			st := a.tracker.RecordFailure(ctx)
			fmt.Println(err.Error())
			if st.Locked {
				until := time.Until(time.UnixMilli(st.LockoutEnd)).Round(time.Second)
				fmt.Printf("Account access locked for %s.\n", until)
			} else {
				fmt.Printf("%d attempt(s) remaining before lockout.\n", st.Remaining)
			}
			return err
		}
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Println("Login failed, please try again.")
		return err
	}

	a.tracker.Reset(ctx)
	a.user = user
	fmt.Printf("Welcome back, %s!\n", user.FirstName)
	return nil
}
