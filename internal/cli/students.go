package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage your students (parents)",
	Long: `Student operations, available to parents for their own students.

Examples:
  learnctl students list
  learnctl students add "Maya" --age 9 --interests "chess, drawing"
  learnctl students update 5 --age 10`,
}

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your students",
	RunE:  runStudentsList,
}

var studentsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a student",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentsAdd,
}

var studentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a student",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentsGet,
}

var studentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student",
	Args:  cobra.ExactArgs(1),
	RunE:  runStudentsUpdate,
}

func init() {
	studentsAddCmd.Flags().Int("age", 0, "student age (required)")
	studentsAddCmd.Flags().String("interests", "", "free-text interests")
	_ = studentsAddCmd.MarkFlagRequired("age")

	studentsUpdateCmd.Flags().String("name", "", "new name")
	studentsUpdateCmd.Flags().Int("age", 0, "new age")
	studentsUpdateCmd.Flags().String("interests", "", "new interests")

	studentsCmd.AddCommand(studentsListCmd)
	studentsCmd.AddCommand(studentsAddCmd)
	studentsCmd.AddCommand(studentsGetCmd)
	studentsCmd.AddCommand(studentsUpdateCmd)
	rootCmd.AddCommand(studentsCmd)
}

// parentClient authenticates and insists on the parent role.
func parentClient(cmd *cobra.Command) (*codegurus.Client, error) {
	user, client, err := currentUser(cmd.Context())
	if err != nil {
		return nil, err
	}
	if err := requireRole(user, codegurus.RoleParent); err != nil {
		return nil, err
	}
	return client, nil
}

func runStudentsList(cmd *cobra.Command, args []string) error {
	client, err := parentClient(cmd)
	if err != nil {
		return err
	}

	students, err := client.Students.List(cmd.Context())
	if err != nil {
		return err
	}

	if ok, err := printStructured(students); ok {
		return err
	}

	if len(students) == 0 {
		fmt.Println("No students registered yet")
		return nil
	}
	w := newTable()
	printTableHeader(w, "ID", "NAME", "AGE", "INTERESTS")
	for _, s := range students {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", s.ID, s.Name, s.Age, truncate(s.Interests, 50))
	}
	return w.Flush()
}

func runStudentsAdd(cmd *cobra.Command, args []string) error {
	client, err := parentClient(cmd)
	if err != nil {
		return err
	}

	age, _ := cmd.Flags().GetInt("age")
	interests, _ := cmd.Flags().GetString("interests")

	student, err := client.Students.Create(cmd.Context(), codegurus.CreateStudentRequest{
		Name:      args[0],
		Age:       age,
		Interests: interests,
	})
	if err != nil {
		if apiErr, ok := codegurus.AsAPIError(err); ok && apiErr.IsNotFound() {
			return fmt.Errorf("parent record missing; run `learnctl signup parent` first")
		}
		return err
	}

	if ok, err := printStructured(student); ok {
		return err
	}
	fmt.Printf("Registered student #%d %q\n", student.ID, student.Name)
	return nil
}

func runStudentsGet(cmd *cobra.Command, args []string) error {
	studentID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid student id %q", args[0])
	}

	client, err := parentClient(cmd)
	if err != nil {
		return err
	}

	student, err := client.Students.Get(cmd.Context(), studentID)
	if err != nil {
		return err
	}

	if ok, err := printStructured(student); ok {
		return err
	}

	fmt.Printf("ID:        %d\n", student.ID)
	fmt.Printf("Name:      %s\n", student.Name)
	fmt.Printf("Age:       %d\n", student.Age)
	fmt.Printf("Interests: %s\n", student.Interests)
	return nil
}

func runStudentsUpdate(cmd *cobra.Command, args []string) error {
	studentID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid student id %q", args[0])
	}

	client, err := parentClient(cmd)
	if err != nil {
		return err
	}

	var req codegurus.UpdateStudentRequest
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		req.Name = &name
	}
	if cmd.Flags().Changed("age") {
		age, _ := cmd.Flags().GetInt("age")
		req.Age = &age
	}
	if cmd.Flags().Changed("interests") {
		interests, _ := cmd.Flags().GetString("interests")
		req.Interests = &interests
	}

	student, err := client.Students.Update(cmd.Context(), studentID, req)
	if err != nil {
		return err
	}

	if ok, err := printStructured(student); ok {
		return err
	}
	fmt.Printf("Updated student #%d\n", student.ID)
	return nil
}
