package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Browse and manage learning sessions",
	Long: `Session operations. Everyone can browse; scheduling and editing
require an admin or an approved volunteer.

Examples:
  learnctl sessions list
  learnctl sessions mine
  learnctl sessions create --skill 2 --title "Intro to Chess" --at 2025-04-12T15:00:00Z
  learnctl sessions enrollments 5`,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions",
	RunE:  runSessionsList,
}

var sessionsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own sessions (volunteers)",
	RunE:  runSessionsMine,
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsGet,
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Schedule a session",
	RunE:  runSessionsCreate,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsDelete,
}

var sessionsEnrollmentsCmd = &cobra.Command{
	Use:   "enrollments <student-id>",
	Short: "List a student's enrollments (parents)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsEnrollments,
}

var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Enroll a student in a session (parents)",
	RunE:  runEnroll,
}

func init() {
	sessionsCreateCmd.Flags().Int("skill", 0, "skill id (required)")
	sessionsCreateCmd.Flags().String("title", "", "session title (required)")
	sessionsCreateCmd.Flags().String("description", "", "session description")
	sessionsCreateCmd.Flags().String("at", "", "scheduled time, RFC 3339 (required)")
	sessionsCreateCmd.Flags().String("meeting-link", "", "video call link")
	_ = sessionsCreateCmd.MarkFlagRequired("skill")
	_ = sessionsCreateCmd.MarkFlagRequired("title")
	_ = sessionsCreateCmd.MarkFlagRequired("at")

	enrollCmd.Flags().Int("student", 0, "student id (required)")
	enrollCmd.Flags().Int("session", 0, "session id (required)")
	_ = enrollCmd.MarkFlagRequired("student")
	_ = enrollCmd.MarkFlagRequired("session")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsMineCmd)
	sessionsCmd.AddCommand(sessionsGetCmd)
	sessionsCmd.AddCommand(sessionsCreateCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
	sessionsCmd.AddCommand(sessionsEnrollmentsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(enrollCmd)
}

func printSessionsTable(sessions []codegurus.Session) error {
	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}
	w := newTable()
	printTableHeader(w, "ID", "SKILL", "TITLE", "WHEN", "STATUS")
	for _, s := range sessions {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			s.ID, s.SkillID, truncate(s.Title, 40), formatTime(s.Schedule), s.Status)
	}
	return w.Flush()
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	sessions, err := getClient().Sessions.List(cmd.Context())
	if err != nil {
		return err
	}
	if ok, err := printStructured(sessions); ok {
		return err
	}
	return printSessionsTable(sessions)
}

func runSessionsMine(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleVolunteer, codegurus.RoleAdmin); err != nil {
		return err
	}

	sessions, err := client.Sessions.Mine(ctx)
	if err != nil {
		return err
	}
	if ok, err := printStructured(sessions); ok {
		return err
	}
	return printSessionsTable(sessions)
}

func runSessionsGet(cmd *cobra.Command, args []string) error {
	sessionID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}

	sess, err := getClient().Sessions.Get(cmd.Context(), sessionID)
	if err != nil {
		return err
	}

	if ok, err := printStructured(sess); ok {
		return err
	}

	fmt.Printf("ID:          %d\n", sess.ID)
	fmt.Printf("Title:       %s\n", sess.Title)
	fmt.Printf("Skill:       %d\n", sess.SkillID)
	fmt.Printf("Volunteer:   %d\n", sess.VolunteerID)
	fmt.Printf("When:        %s\n", formatTime(sess.Schedule))
	fmt.Printf("Status:      %s\n", sess.Status)
	if sess.MeetingLink != "" {
		fmt.Printf("Meeting:     %s\n", sess.MeetingLink)
	}
	if sess.Description != "" {
		fmt.Printf("Description: %s\n", sess.Description)
	}
	return nil
}

func runSessionsCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	at, _ := cmd.Flags().GetString("at")
	schedule, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return fmt.Errorf("invalid --at %q, want RFC 3339 (e.g. 2025-04-12T15:00:00Z)", at)
	}

	skillID, _ := cmd.Flags().GetInt("skill")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	meetingLink, _ := cmd.Flags().GetString("meeting-link")

	sess, err := client.Sessions.Create(ctx, codegurus.CreateSessionRequest{
		SkillID:     skillID,
		Title:       title,
		Description: description,
		Schedule:    schedule,
		MeetingLink: meetingLink,
	})
	if err != nil {
		return err
	}

	if ok, err := printStructured(sess); ok {
		return err
	}
	fmt.Printf("Scheduled session #%d %q at %s\n", sess.ID, sess.Title, formatTime(sess.Schedule))
	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	sessionID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	if err := client.Sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	fmt.Printf("Deleted session #%d\n", sessionID)
	return nil
}

func runSessionsEnrollments(cmd *cobra.Command, args []string) error {
	studentID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid student id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleParent); err != nil {
		return err
	}

	enrollments, err := client.Sessions.StudentEnrollments(ctx, studentID)
	if err != nil {
		return err
	}

	if ok, err := printStructured(enrollments); ok {
		return err
	}

	if len(enrollments) == 0 {
		fmt.Println("No enrollments found")
		return nil
	}
	w := newTable()
	printTableHeader(w, "ID", "SESSION", "ENROLLED")
	for _, e := range enrollments {
		fmt.Fprintf(w, "%d\t%d\t%s\n", e.ID, e.SessionID, formatTime(e.EnrolledAt))
	}
	return w.Flush()
}

func runEnroll(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireRole(user, codegurus.RoleParent); err != nil {
		return err
	}

	studentID, _ := cmd.Flags().GetInt("student")
	sessionID, _ := cmd.Flags().GetInt("session")

	enrollment, err := client.Sessions.Enroll(ctx, codegurus.EnrollRequest{
		StudentID: studentID,
		SessionID: sessionID,
	})
	if err != nil {
		if codegurus.IsConflict(err) {
			fmt.Printf("Student #%d is already enrolled in session #%d\n", studentID, sessionID)
			return nil
		}
		return err
	}

	if ok, err := printStructured(enrollment); ok {
		return err
	}
	fmt.Printf("Enrolled student #%d in session #%d\n", enrollment.StudentID, enrollment.SessionID)
	return nil
}
