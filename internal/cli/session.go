package cli

import (
	"context"
	"fmt"
)

// Status prints the current session state.
func (a *App) Status(ctx context.Context) error {
	st := a.authService.CheckSession(ctx)
	if !st.Valid {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("Logged in as %s %s <%s>\n", st.User.FirstName, st.User.LastName, st.User.Email)
	return nil
}

// Logout wipes the locally persisted session and account data. The user
// directory keeps the identity, so logging in again works as usual.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Println("Logout did not complete cleanly; some local data may remain.")
		return err
	}
	a.user = nil
	fmt.Println("Logged out.")
	return nil
}

// Unlock resets the failed-attempt counter and the lockout window.
func (a *App) Unlock(ctx context.Context) error {
	a.tracker.Reset(ctx)
	fmt.Println("Lockout reset.")
	return nil
}
