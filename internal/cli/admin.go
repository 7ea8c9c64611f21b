package cli

import (
	"context"
	"errors"
	"fmt"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/cryptox"
)

func (a *App) adminMenu(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out, "\n--- Account management ---")
		fmt.Fprintln(a.out, "1) List accounts")
		fmt.Fprintln(a.out, "2) Create account")
		fmt.Fprintln(a.out, "3) Delete account")
		fmt.Fprintln(a.out, "4) Reset password")
		fmt.Fprintln(a.out, "0) Back")

		choice, err := a.getLine("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := a.listAccounts(ctx); err != nil {
				return err
			}
		case "2":
			if err := a.adminCreateAccount(ctx); err != nil {
				return err
			}
		case "3":
			if err := a.deleteAccount(ctx); err != nil {
				return err
			}
		case "4":
			if err := a.resetPassword(ctx); err != nil {
				return err
			}
		case "0":
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid selection.")
		}
	}
}

func (a *App) listAccounts(ctx context.Context) error {
	accounts, err := a.users.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\nAccounts (admins first):")
	for _, acc := range accounts {
		role := "user"
		if acc.IsAdmin {
			role = "admin"
		}
		fmt.Fprintf(a.out, "  %-20s %s\n", acc.Username, role)
	}
	return nil
}

func (a *App) adminCreateAccount(ctx context.Context) error {
	username, err := a.getLine("New username: ")
	if err != nil {
		return err
	}
	role, err := a.getLine("Admin account? (y/N): ")
	if err != nil {
		return err
	}
	password, err := getPassword("Password: ", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	err = a.users.Create(ctx, username, string(password), role == "y" || role == "Y")
	if err != nil {
		var policyErr *common.PolicyError
		switch {
		case errors.As(err, &policyErr):
			fmt.Fprintln(a.out, "Password rejected:", policyErr.Reason)
		case errors.Is(err, common.ErrUsernameTaken):
			fmt.Fprintln(a.out, "That username already exists.")
		case errors.Is(err, common.ErrEmptyUsername):
			fmt.Fprintln(a.out, "Username cannot be empty.")
		default:
			return err
		}
		return nil
	}
	fmt.Fprintln(a.out, "Account created.")
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	username, err := a.getLine("Username to delete: ")
	if err != nil {
		return err
	}
	if username == a.current.Username {
		fmt.Fprintln(a.out, "You cannot delete the account you are logged in with.")
		return nil
	}

	deleted, err := a.users.Delete(ctx, username)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(a.out, "Account deleted.")
	} else {
		fmt.Fprintln(a.out, "No such account.")
	}
	return nil
}

func (a *App) resetPassword(ctx context.Context) error {
	username, err := a.getLine("Username to reset: ")
	if err != nil {
		return err
	}
	password, err := getPassword("New password: ", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	updated, err := a.users.SetPassword(ctx, username, string(password))
	if err != nil {
		var policyErr *common.PolicyError
		if errors.As(err, &policyErr) {
			fmt.Fprintln(a.out, "Password rejected:", policyErr.Reason)
			return nil
		}
		return err
	}
	if updated {
		fmt.Fprintln(a.out, "Password reset.")
	} else {
		fmt.Fprintln(a.out, "No such account.")
	}
	return nil
}
