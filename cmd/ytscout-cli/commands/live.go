package commands

import (
	"fmt"

	"ytscout/lib/scrapers/youtube/pages"
	"ytscout/lib/scrapers/youtube/scrape"
	"ytscout/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live <channel id>",
	Short: "Resolves a channel's live endpoint and reports its broadcast state.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseChannelId(args[0])
		client := newClient()

		page, err := client.LivePage(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to resolve live page", err)
		}

		switch p := page.(type) {
		case *pages.VideoPage:
			fmt.Printf("broadcast: %s\n", p.VideoId.Id)
			if title, err := scrape.VideoTitle(p); err == nil {
				fmt.Printf("title: %s\n", title.Title)
			}
			fmt.Printf("live now: %t\n", scrape.IsLiveNow(p))
			if params := scrape.LiveChatParameters(p); params != nil {
				fmt.Printf("chat continuation: %s\n", params.Continuation)
			}
		case *pages.ChannelPage:
			fmt.Println("no active or upcoming broadcast")
			fmt.Printf("streaming badge: %t\n", scrape.HasLiveBadge(p))
		}
	},
}
