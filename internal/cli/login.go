package cli

import (
	"context"
	"errors"
	"fmt"

	"symptomexplorer/internal/common"
	"symptomexplorer/internal/cryptox"
	"symptomexplorer/internal/users"
)

// login prompts for credentials and authenticates. A nil identity with nil
// error means the attempt failed and the caller should re-show the menu.
func (a *App) login(ctx context.Context) (*users.Identity, error) {
	username, err := a.getLine("Username: ")
	if err != nil {
		return nil, err
	}
	password, err := getPassword("Password: ", a.out)
	if err != nil {
		return nil, err
	}
	defer cryptox.Wipe(password)

	identity, err := a.users.Authenticate(ctx, username, string(password))
	if err != nil {
		return nil, err
	}
	if identity == nil {
		// unknown username and wrong password read identically
		fmt.Fprintln(a.out, "Invalid username or password.")
		return nil, nil
	}
	return identity, nil
}

func (a *App) createAccount(ctx context.Context) error {
	fmt.Fprintln(a.out, "\n--- Create account ---")
	username, err := a.getLine("Choose a username: ")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password rules: at least 8 chars + lowercase + uppercase + digit + special char.")
	password, err := getPassword("Choose a password: ", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	err = a.users.Create(ctx, username, string(password), false)
	switch {
	case err == nil:
		fmt.Fprintln(a.out, "Account created. You can now log in.")
	case errors.Is(err, common.ErrUsernameTaken):
		fmt.Fprintln(a.out, "That username already exists. Try logging in.")
	case errors.Is(err, common.ErrEmptyUsername):
		fmt.Fprintln(a.out, "Username cannot be empty.")
	default:
		var policyErr *common.PolicyError
		if errors.As(err, &policyErr) {
			fmt.Fprintln(a.out, "Password rejected:", policyErr.Reason)
			return nil
		}
		return err
	}
	return nil
}

func (a *App) changeOwnPassword(ctx context.Context) error {
	password, err := getPassword("New password: ", a.out)
	if err != nil {
		return err
	}
	defer cryptox.Wipe(password)

	updated, err := a.users.SetPassword(ctx, a.current.Username, string(password))
	if err != nil {
		var policyErr *common.PolicyError
		if errors.As(err, &policyErr) {
			fmt.Fprintln(a.out, "Password rejected:", policyErr.Reason)
			return nil
		}
		return err
	}
	if !updated {
		// account deleted underneath this session
		fmt.Fprintln(a.out, "Account no longer exists.")
		return nil
	}
	fmt.Fprintln(a.out, "Password updated.")
	return nil
}
