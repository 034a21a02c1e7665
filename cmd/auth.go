package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/augmentcode/augmetrics/internal/contract"
	"github.com/augmentcode/augmetrics/internal/credentials"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdin is buffered once so piped input survives multiple prompts.
var stdin = bufio.NewReader(os.Stdin)

// authCmd focused on credential management.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage stored Augment API credentials",
	Long: `Manage the API token and enterprise ID used to reach the Augment
Analytics API.

Credentials are stored in ~/.augment/credentials with owner-only permissions.
Environment variables (AUGMENT_API_TOKEN, ENTERPRISE_ID) take precedence over
the stored file.

Subcommands:
  login  - Prompt for credentials and store them
  status - Show which credentials are stored
  logout - Remove stored credentials

Examples:
  # Store credentials interactively
  augmetrics auth login

  # Check what is stored
  augmetrics auth status`,
}

// authLoginCmd prompts for credentials and stores them.
var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Prompt for an API token and enterprise ID and store them",
	Long: `Prompt for an Augment API token and enterprise ID, then write them to
~/.augment/credentials with owner-only permissions.

The token prompt hides input when running in a terminal. Both values can
also be piped in, one per line, for scripted setup.

Examples:
  # Interactive login
  augmetrics auth login

  # Scripted login
  printf '%s\n%s\n' "$TOKEN" "$ENTERPRISE_ID" | augmetrics auth login`,
	Run: func(_ *cobra.Command, _ []string) {
		token, err := promptToken()
		if err != nil {
			contract.LogFatal("Cannot read API token", err)
		}
		if err := credentials.ValidateTokenFormat(token); err != nil {
			contract.LogFatal("Invalid API token", err)
		}

		enterpriseID, err := promptLine("Enterprise ID")
		if err != nil {
			contract.LogFatal("Cannot read enterprise ID", err)
		}

		store := credentials.NewStore()
		creds := &credentials.Credentials{APIToken: token, EnterpriseID: enterpriseID}
		if err := store.Save(creds); err != nil {
			contract.LogFatal("Cannot save credentials", err)
		}
		fmt.Printf("✅ Credentials saved to %s\n", store.Path())
	},
}

// authStatusCmd shows which credentials are stored.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which credentials are stored",
	Run: func(_ *cobra.Command, _ []string) {
		store := credentials.NewStore()
		creds, err := store.Load()
		if err != nil {
			contract.LogFatal("Cannot read credentials", err)
		}
		if creds == nil {
			fmt.Printf("No credentials stored at %s. Run 'augmetrics auth login'.\n", store.Path())
			return
		}
		fmt.Printf("Credentials stored at %s\n", store.Path())
		fmt.Printf("  API token:     %s\n", maskToken(creds.APIToken))
		if creds.EnterpriseID != "" {
			fmt.Printf("  Enterprise ID: %s\n", creds.EnterpriseID)
		} else {
			fmt.Printf("  Enterprise ID: (not set)\n")
		}
	},
}

// authLogoutCmd removes stored credentials.
var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	Run: func(_ *cobra.Command, _ []string) {
		store := credentials.NewStore()
		if err := store.Clear(); err != nil {
			contract.LogFatal("Cannot remove credentials", err)
		}
		fmt.Println("Credentials removed.")
	},
}

// promptToken reads the API token, hiding input when stdin is a terminal.
func promptToken() (string, error) {
	_, _ = fmt.Fprint(os.Stderr, "Augment API token: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return readLine()
}

// promptLine reads one plain-text value from stdin.
func promptLine(label string) (string, error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: ", label)
	return readLine()
}

func readLine() (string, error) {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// maskToken hides all but the edges of a stored token.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
