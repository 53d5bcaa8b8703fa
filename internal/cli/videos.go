package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Browse and manage recorded lessons",
	Long: `Video operations. Everyone can browse; publishing and editing
require an admin or an approved volunteer.

Examples:
  learnctl videos list
  learnctl videos by-skill 3
  learnctl videos publish --skill 3 --title "Openings" --url https://youtu.be/x`,
}

var videosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all videos",
	RunE:  runVideosList,
}

var videosBySkillCmd = &cobra.Command{
	Use:   "by-skill <skill-id>",
	Short: "List videos for a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideosBySkill,
}

var videosPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a video",
	RunE:  runVideosPublish,
}

var videosDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a video",
	Args:  cobra.ExactArgs(1),
	RunE:  runVideosDelete,
}

func init() {
	videosPublishCmd.Flags().Int("skill", 0, "skill id (required)")
	videosPublishCmd.Flags().String("title", "", "video title (required)")
	videosPublishCmd.Flags().String("description", "", "video description")
	videosPublishCmd.Flags().String("url", "", "YouTube URL (required)")
	_ = videosPublishCmd.MarkFlagRequired("skill")
	_ = videosPublishCmd.MarkFlagRequired("title")
	_ = videosPublishCmd.MarkFlagRequired("url")

	videosCmd.AddCommand(videosListCmd)
	videosCmd.AddCommand(videosBySkillCmd)
	videosCmd.AddCommand(videosPublishCmd)
	videosCmd.AddCommand(videosDeleteCmd)
	rootCmd.AddCommand(videosCmd)
}

func printVideosTable(videos []codegurus.Video) error {
	if len(videos) == 0 {
		fmt.Println("No videos found")
		return nil
	}
	w := newTable()
	printTableHeader(w, "ID", "SKILL", "TITLE", "URL")
	for _, v := range videos {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", v.ID, v.SkillID, truncate(v.Title, 40), v.YoutubeURL)
	}
	return w.Flush()
}

func runVideosList(cmd *cobra.Command, args []string) error {
	videos, err := getClient().Videos.List(cmd.Context())
	if err != nil {
		return err
	}
	if ok, err := printStructured(videos); ok {
		return err
	}
	return printVideosTable(videos)
}

func runVideosBySkill(cmd *cobra.Command, args []string) error {
	skillID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid skill id %q", args[0])
	}

	videos, err := getClient().Videos.BySkill(cmd.Context(), skillID)
	if err != nil {
		return err
	}
	if ok, err := printStructured(videos); ok {
		return err
	}
	return printVideosTable(videos)
}

func runVideosPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	skillID, _ := cmd.Flags().GetInt("skill")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	url, _ := cmd.Flags().GetString("url")

	video, err := client.Videos.Create(ctx, codegurus.CreateVideoRequest{
		SkillID:     skillID,
		Title:       title,
		Description: description,
		YoutubeURL:  url,
	})
	if err != nil {
		return err
	}

	if ok, err := printStructured(video); ok {
		return err
	}
	fmt.Printf("Published video #%d %q\n", video.ID, video.Title)
	return nil
}

func runVideosDelete(cmd *cobra.Command, args []string) error {
	videoID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid video id %q", args[0])
	}

	ctx := cmd.Context()
	user, client, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := requireCreator(user); err != nil {
		return err
	}

	if err := client.Videos.Delete(ctx, videoID); err != nil {
		return err
	}
	fmt.Printf("Deleted video #%d\n", videoID)
	return nil
}
