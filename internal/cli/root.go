package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.user != nil {
		return fmt.Sprintf("(%s)", a.user.Email)
	}
	return ""
}

// Root restores the persisted session when one exists and then drops into
// the interactive loop.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to regvault CLI (type 'help' for commands)")

	if st := a.authService.CheckSession(ctx); st.Valid {
		a.user = st.User
		fmt.Printf("Welcome back, %s!\n", st.User.FirstName)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
