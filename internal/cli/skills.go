package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Browse and manage skills",
	Long: `Skill operations. Everyone can browse; creating, updating and
deleting require an admin or an approved volunteer.

Examples:
  learnctl skills list
  learnctl skills create "Chess" --description "Openings to endgames"
  learnctl skills get 3
  learnctl skills delete 3`,
}

var skillsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills",
	RunE:  runSkillsList,
}

var skillsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsGet,
}

var skillsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsCreate,
}

var skillsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsUpdate,
}

var skillsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillsDelete,
}

func init() {
	skillsCreateCmd.Flags().String("description", "", "skill description")
	skillsUpdateCmd.Flags().String("name", "", "new name")
	skillsUpdateCmd.Flags().String("description", "", "new description")

	skillsCmd.AddCommand(skillsListCmd)
	skillsCmd.AddCommand(skillsGetCmd)
	skillsCmd.AddCommand(skillsCreateCmd)
	skillsCmd.AddCommand(skillsUpdateCmd)
	skillsCmd.AddCommand(skillsDeleteCmd)
	rootCmd.AddCommand(skillsCmd)
}

func runSkillsList(cmd *cobra.Command, args []string) error {
	client := getClient()
	skills, err := client.Skills.List(cmd.Context())
	if err != nil {
		return err
	}

	if ok, err := printStructured(skills); ok {
		return err
	}

	if len(skills) == 0 {
		fmt.Println("No skills found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "NAME", "DESCRIPTION")
	for _, s := range skills {
		fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Name, truncate(s.Description, 60))
	}
	return w.Flush()
}

func runSkillsGet(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	skill, err := getClient().Skills.Get(cmd.Context(), skillID)
	if err != nil {
		return err
	}

	if ok, err := printStructured(skill); ok {
		return err
	}

	fmt.Printf("ID:          %d\n", skill.ID)
	fmt.Printf("Name:        %s\n", skill.Name)
	fmt.Printf("Description: %s\n", skill.Description)
	fmt.Printf("Created:     %s\n", formatTime(skill.CreatedAt))
	return nil
}

func runSkillsCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	description, _ := cmd.Flags().GetString("description")
	skill, err := client.Skills.Create(ctx, codegurus.CreateSkillRequest{
		Name:        args[0],
		Description: description,
	})
	if err != nil {
		return err
	}

	if ok, err := printStructured(skill); ok {
		return err
	}
	fmt.Printf("Created skill #%d %q\n", skill.ID, skill.Name)
	return nil
}

func runSkillsUpdate(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	var req codegurus.UpdateSkillRequest
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}

	skill, err := client.Skills.Update(ctx, skillID, req)
	if err != nil {
		return err
	}

	if ok, err := printStructured(skill); ok {
		return err
	}
	fmt.Printf("Updated skill #%d\n", skill.ID)
	return nil
}

func runSkillsDelete(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	if err := client.Skills.Delete(ctx, skillID); err != nil {
		return err
	}
	fmt.Printf("Deleted skill #%d\n", skillID)
	return nil
}
