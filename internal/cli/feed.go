package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	feedFlagLimit  int
	feedFlagOffset int
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Show recent posts from your LinkedIn feed",
	Args:  cobra.NoArgs,
	RunE:  runFeed,
}

func init() {
	feedCmd.Flags().IntVarP(&feedFlagLimit, "limit", "n", 0, "Maximum number of posts")
	feedCmd.Flags().IntVar(&feedFlagOffset, "offset", 0, "Number of posts to skip")
}

func runFeed(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	posts, err := svc.FeedPosts(cmd.Context(), feedFlagLimit, feedFlagOffset)
	if err != nil {
		return err
	}

	if flagJSON {
		return outputJSON(posts)
	}

	if len(posts) == 0 {
		if !flagQuiet {
			fmt.Println("No posts")
		}
		return nil
	}

	for i, post := range posts {
		if i > 0 {
			fmt.Println("---")
		}
		fmt.Printf("%s\n%s\n", post.Author, post.Content)
	}
	return nil
}
