package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"symptomexplorer/internal/users"
)

// Run drives the interactive session: the startup menu until a login
// succeeds, then the main menu until logout or exit. Returns nil on a normal
// exit, including EOF on stdin.
func (a *App) Run(ctx context.Context) error {
	for {
		identity, err := a.startupMenu(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if identity == nil {
			return nil
		}

		a.current = identity
		a.logger.Info(ctx, "login", "username", identity.Username, "is_admin", identity.IsAdmin)

		err = a.mainMenu(ctx)
		a.current = nil
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// startupMenu shows login/create-account options and returns the
// authenticated identity, or nil when the user chose to exit.
func (a *App) startupMenu(ctx context.Context) (*users.Identity, error) {
	for {
		fmt.Fprintln(a.out, "\n=== Symptom Explorer ===")
		fmt.Fprintln(a.out, "1) Login")
		fmt.Fprintln(a.out, "2) Create account")
		fmt.Fprintln(a.out, "3) Exit")

		choice, err := a.getLine("Choose an option: ")
		if err != nil {
			return nil, err
		}

		switch choice {
		case "1":
			identity, err := a.login(ctx)
			if err != nil {
				return nil, err
			}
			if identity != nil {
				return identity, nil
			}
		case "2":
			if err := a.createAccount(ctx); err != nil {
				return nil, err
			}
		case "3":
			return nil, nil
		default:
			fmt.Fprintln(a.out, "Invalid selection.")
		}
	}
}

func (a *App) mainMenu(ctx context.Context) error {
	for {
		fmt.Fprintf(a.out, "\n=== Main menu (%s) ===\n", a.current.Username)
		fmt.Fprintln(a.out, "1) View statistics")
		fmt.Fprintln(a.out, "2) Symptom checker")
		fmt.Fprintln(a.out, "3) Change my password")
		if a.current.IsAdmin {
			fmt.Fprintln(a.out, "4) Manage accounts")
		}
		fmt.Fprintln(a.out, "0) Logout")

		choice, err := a.getLine("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			a.showStats()
		case "2":
			if err := a.symptomChecker(); err != nil {
				return err
			}
		case "3":
			if err := a.changeOwnPassword(ctx); err != nil {
				return err
			}
		case "4":
			if !a.current.IsAdmin {
				fmt.Fprintln(a.out, "Invalid selection.")
				continue
			}
			if err := a.adminMenu(ctx); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid selection.")
		}
	}
}

func (a *App) getLine(prompt string) (string, error) {
	return getLine(a.reader, prompt, a.out)
}
