package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/cli"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/prefs"
)

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and save your session",
		Long: `Authenticate against the backend and save the issued tokens.

The password is read from the terminal, or from the CLARITY_PASSWORD
environment variable for non-interactive use.`,
		Args: cobra.ExactArgs(1),
		RunE: runLogin,
	}
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := args[0]

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}

	client := newClient()
	pair, err := client.Login(cmd.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return common.NewUserError("Login failed: wrong username or password", err)
		}
		return fmt.Errorf("login failed: %w", err)
	}

	_, durable, err := openStores()
	if err != nil {
		return err
	}
	if err := durable.SaveTokens(prefs.Tokens{
		Username: username,
		Access:   pair.Access,
		Refresh:  pair.Refresh,
		SavedAt:  time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Logged in as %s", username)))
	return nil
}

func registerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE:  runRegister,
	}
	cmd.Flags().String("email", "", "email address for the new account")
	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	username := args[0]
	email, _ := cmd.Flags().GetString("email")

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return common.NewUserError("Passwords do not match", nil)
	}

	client := newClient()
	reg := api.Registration{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	}
	if err := client.Register(cmd.Context(), reg); err != nil {
		var vErr *api.ValidationError
		if errors.As(err, &vErr) {
			return common.NewUserError("Registration rejected: "+vErr.Error(), nil)
		}
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Account %s created. Run 'clarity login %s' to sign in.", username, username)))
	return nil
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard session state",
		Long: `Discard the saved tokens along with view and filter preferences.

Spending limits and category ordering survive a logout.`,
		RunE: runLogout,
	}
}

func runLogout(_ *cobra.Command, _ []string) error {
	session, durable, err := openStores()
	if err != nil {
		return err
	}

	if err := durable.ClearTokens(); err != nil {
		return fmt.Errorf("failed to clear tokens: %w", err)
	}
	// View mode and filters are session-scoped; logout resets them.
	if err := session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session state: %w", err)
	}

	slog.Debug("Session state cleared")
	fmt.Println(cli.FormatSuccess("Logged out"))
	return nil
}

// readPassword prompts on the terminal without echo, falling back to
// CLARITY_PASSWORD for scripted use.
func readPassword(prompt string) (string, error) {
	if password := os.Getenv("CLARITY_PASSWORD"); password != "" {
		return password, nil
	}

	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return "", common.NewUserError("Password must not be empty", nil)
	}
	return string(raw), nil
}
