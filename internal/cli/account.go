package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the current account",
	RunE:  runMe,
}

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations",
	Long: `Admin-only operations: user listings and volunteer approval.

Examples:
  learnctl admin users
  learnctl admin pending
  learnctl admin approve 3`,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List all users",
	RunE:  runAdminUsers,
}

var adminPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List volunteers awaiting approval",
	RunE:  runAdminPending,
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <user-id>",
	Short: "Approve a volunteer",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminApprove,
}

func init() {
	adminUsersCmd.Flags().Int("skip", 0, "number of users to skip")
	adminUsersCmd.Flags().Int("limit", 100, "maximum number of users")

	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminPendingCmd)
	adminCmd.AddCommand(adminApproveCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(adminCmd)
}

func runMe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}

	if ok, err := printStructured(user); ok {
		return err
	}

	fmt.Printf("ID:       %d\n", user.ID)
	fmt.Printf("ClerkID:  %s\n", user.ClerkID)
	fmt.Printf("Role:     %s\n", user.Role)
	fmt.Printf("Approved: %s\n", yesNo(user.Approved))
	fmt.Printf("Since:    %s\n", formatTime(user.CreatedAt))

	if user.Role == codegurus.RoleVolunteer && !user.Approved {
		fmt.Printf("\n%s\n", pendingNotice)
	}
	if user.Role == codegurus.RoleParent {
		if parent, err := client.Parents.Me(ctx); err == nil {
			fmt.Printf("\nParent record #%d (%s)\n", parent.ID, parent.Email)
		} else if codegurus.IsNotFound(err) {
			fmt.Println("\nParent record missing; run `learnctl signup parent` to finish registration.")
		}
	}
	return nil
}

func runAdminUsers(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleAdmin); err != nil {
		return err
	}

	skip, _ := cmd.Flags().GetInt("skip")
	limit, _ := cmd.Flags().GetInt("limit")
	users, err := client.Users.List(ctx, &codegurus.ListUsersOptions{Skip: skip, Limit: limit})
	if err != nil {
		return err
	}

	if ok, err := printStructured(users); ok {
		return err
	}

	w := newTable()
	printTableHeader(w, "ID", "CLERK ID", "ROLE", "APPROVED", "SINCE")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			u.ID, truncate(u.ClerkID, 24), u.Role, yesNo(u.Approved), formatTime(u.CreatedAt))
	}
	return w.Flush()
}

func runAdminPending(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleAdmin); err != nil {
		return err
	}

	pending, err := client.Users.PendingVolunteers(ctx)
	if err != nil {
		return err
	}

	if ok, err := printStructured(pending); ok {
		return err
	}

	if len(pending) == 0 {
		fmt.Println("No volunteers awaiting approval")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "CLERK ID", "SINCE")
	for _, u := range pending {
		fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, truncate(u.ClerkID, 24), formatTime(u.CreatedAt))
	}
	return w.Flush()
}

func runAdminApprove(cmd *cobra.Command, args []string) error {
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleAdmin); err != nil {
		return err
	}

	approved, err := client.Users.Approve(ctx, userID)
	if err != nil {
		return err
	}

	if ok, err := printStructured(approved); ok {
		return err
	}
	fmt.Printf("Approved volunteer #%d\n", approved.ID)
	return nil
}
