package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hypejab/triage/internal/auth"
)

// AuthCmds returns the authentication commands (login, signup, logout,
// whoami, account).
func AuthCmds() []*cobra.Command {
	return []*cobra.Command{
		loginCmd(),
		signupCmd(),
		logoutCmd(),
		whoamiCmd(),
		accountCmd(),
	}
}

func loginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and load your board",
		Long: `Log in with a registered email. Your persisted board is restored;
logging in as a different user never carries the previous user's board over.

Examples:
  triage login --email=ana@example.com --password=hunter22
`,
		RunE: runLogin,
	}

	cmd.Flags().String("email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().String("password", "", "Password (required)")
	_ = cmd.MarkFlagRequired("password")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	return runCredentialed(cmd, func(c *CLI, email, password string) (*auth.User, error) {
		return c.App.Session.Login(email, password)
	}, "Logged in as")
}

func signupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		Long: `Register a new account. The new user starts with the default board.

Examples:
  triage signup --email=ana@example.com --password=hunter22
`,
		RunE: runSignup,
	}

	cmd.Flags().String("email", "", "Email address (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().String("password", "", "Password, at least 6 characters (required)")
	_ = cmd.MarkFlagRequired("password")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runSignup(cmd *cobra.Command, args []string) error {
	return runCredentialed(cmd, func(c *CLI, email, password string) (*auth.User, error) {
		return c.App.Session.Signup(email, password)
	}, "Signed up as")
}

func runCredentialed(cmd *cobra.Command, action func(*CLI, string, string) (*auth.User, error), verb string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := NewFormatter(jsonOutput, false)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	user, err := action(c, email, password)
	if err != nil {
		code := "AUTH_ERROR"
		exit := ExitError
		switch {
		case errors.Is(err, auth.ErrInvalidEmail), errors.Is(err, auth.ErrPasswordTooShort):
			code = "INVALID_INPUT"
			exit = ExitValidation
		case errors.Is(err, auth.ErrInvalidCredentials):
			code = "INVALID_CREDENTIALS"
			exit = ExitUsage
		case errors.Is(err, auth.ErrUserExists):
			code = "USER_EXISTS"
			exit = ExitValidation
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(exit)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"user":    user,
		})
	}
	fmt.Printf("✓ %s %s\n", verb, user.Email)
	return nil
}

func logoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Long: `End the session. Your board stays persisted and is restored on the
next login; logout never deletes stored data.`,
		RunE: runLogout,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runLogout(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := NewFormatter(jsonOutput, false)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	c.App.Session.Logout()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{"success": true})
	}
	fmt.Println("✓ Logged out")
	return nil
}

func whoamiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the active user",
		RunE:  runWhoami,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runWhoami(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := NewFormatter(jsonOutput, false)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	user := c.App.Session.Current()

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"user":    user,
		})
	}
	if user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("Logged in as %s\n", user.Email)
	return nil
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage your account",
	}
	cmd.AddCommand(accountDeleteCmd())
	return cmd
}

func accountDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete your account and all stored data",
		Long: `Delete the active account: the persisted board snapshot and the user
record are wiped. This is the only operation that deletes stored data.`,
		RunE: runAccountDelete,
	}

	cmd.Flags().Bool("force", false, "Skip confirmation")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runAccountDelete(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := NewFormatter(jsonOutput, false)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	user := c.App.Session.Current()
	if user == nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", "not logged in"); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		fmt.Printf("⚠ This permanently deletes the board for %s. Continue? (y/N): ", user.Email)
		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := c.App.Session.DeleteAccount(); err != nil {
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{"success": true})
	}
	fmt.Println("✓ Account deleted")
	return nil
}
