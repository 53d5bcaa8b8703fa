package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
	"github.com/lalitgarg2005/CodeGurus/signup"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register for a role on the platform",
	Long: `Register the signed-in Clerk identity for a role.

Parents also get a parent record, created on first registration and
reused afterwards. Volunteers start unapproved and wait for an admin.

Examples:
  learnctl signup parent --email you@example.com
  learnctl signup volunteer
  learnctl signup admin`,
}

var signupParentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Register as a parent",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		return runSignup(cmd, codegurus.RoleParent, email)
	},
}

var signupVolunteerCmd = &cobra.Command{
	Use:   "volunteer",
	Short: "Register as a volunteer (requires admin approval)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSignup(cmd, codegurus.RoleVolunteer, "")
	},
}

var signupAdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Register as an administrator",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSignup(cmd, codegurus.RoleAdmin, "")
	},
}

func init() {
	signupParentCmd.Flags().String("email", "", "parent contact email (defaults to the identity's primary email)")

	signupCmd.AddCommand(signupParentCmd)
	signupCmd.AddCommand(signupVolunteerCmd)
	signupCmd.AddCommand(signupAdminCmd)
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, role codegurus.Role, email string) error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	identity := signup.Identity{
		ClerkID:      cfg.GetString("clerk_user_id"),
		PrimaryEmail: cfg.GetString("clerk_primary_email"),
		SignedIn:     cfg.GetString("clerk_session_id") != "" || cfg.GetString("token") != "",
	}

	primary, fallback, err := tokenProviders()
	if err != nil {
		return err
	}

	orch, err := signup.New(signup.Config{
		Client:   getClient(),
		Primary:  primary,
		Fallback: fallback,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	result, err := orch.Run(cmd.Context(), signup.Request{
		Identity: identity,
		Role:     role,
		Email:    email,
	})
	if err != nil {
		return err
	}

	if ok, err := printStructured(result); ok {
		return err
	}

	fmt.Printf("Registered as %s.\n", role)
	if result.User != nil && result.User.Role == codegurus.RoleVolunteer && !result.User.Approved {
		fmt.Println("Your account is pending admin approval.")
	}
	if result.Parent != nil {
		fmt.Printf("Parent record #%d (%s) is ready.\n", result.Parent.ID, result.Parent.Email)
	}
	return nil
}

// tokenProviders builds the primary and fallback providers for signup:
// an explicit --token wins, the Clerk backend API is the usual path.
func tokenProviders() (signup.TokenProvider, signup.TokenProvider, error) {
	if token := cfg.GetString("token"); token != "" {
		return signup.StaticProvider(token), nil, nil
	}
	provider, err := clerkProvider()
	if err != nil {
		return nil, nil, err
	}
	return provider, nil, nil
}
