package cli

import (
	"context"
	"fmt"
)

// ShowDraft prints the saved registration draft, if any.
func (a *App) ShowDraft(ctx context.Context) error {
	draft := a.drafts.Load(ctx)
	if len(draft) == 0 {
		fmt.Println("No saved draft.")
		return nil
	}
	fmt.Println("Saved registration draft:")
	for _, f := range profileFields {
		if v := draftString(draft, f.key); v != "" {
			fmt.Printf("  %s: %s\n", f.prompt, v)
		}
	}
	return nil
}

// ClearDraft discards the saved registration draft.
func (a *App) ClearDraft(ctx context.Context) error {
	a.drafts.Clear(ctx)
	fmt.Println("Draft discarded.")
	return nil
}
