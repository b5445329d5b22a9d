package commands

import (
	"os"

	"ytscout/lib/scrapers/youtube/scrape"
	"ytscout/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(videoCmd)
}

var videoCmd = &cobra.Command{
	Use:   "video <video id>",
	Short: "Shows a video's title, owner, thumbnail, like count and live state.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseVideoId(args[0])
		client := newClient()

		page, err := client.VideoPage(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch video page", err)
		}

		title, err := scrape.VideoTitle(page)
		if err != nil {
			serviceutil.Fatal("failed to extract video title", err)
		}
		thumbnail, err := scrape.VideoThumbnail(page)
		if err != nil {
			serviceutil.Fatal("failed to extract video thumbnail", err)
		}
		channelTitle, err := scrape.ChannelTitleFromVideoPage(page)
		if err != nil {
			serviceutil.Fatal("failed to extract channel title", err)
		}
		channelId, err := scrape.ChannelIdFromVideoPage(page)
		if err != nil {
			serviceutil.Fatal("failed to extract channel id", err)
		}
		subscribers, err := scrape.SubscriberCount(page)
		if err != nil {
			serviceutil.Fatal("failed to extract subscriber count", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"title", title.Title})
		t.AppendRow(table.Row{"thumbnail", thumbnail})
		t.AppendRow(table.Row{"channel", channelTitle.Title})
		t.AppendRow(table.Row{"channel id", channelId.Id})
		t.AppendRow(table.Row{"subscribers", subscribers})

		likes, ok, err := scrape.LikeCount(page)
		if err != nil {
			serviceutil.Fatal("failed to extract like count", err)
		}
		if ok {
			t.AppendRow(table.Row{"likes", likes})
		} else {
			t.AppendRow(table.Row{"likes", "hidden"})
		}

		live := scrape.IsLiveNow(page)
		t.AppendRow(table.Row{"live now", live})
		if live {
			viewers, err := scrape.LiveViewCount(page)
			if err != nil {
				serviceutil.Fatal("failed to extract live view count", err)
			}
			t.AppendRow(table.Row{"live viewers", viewers})
		}
		if params := scrape.LiveChatParameters(page); params != nil {
			t.AppendRow(table.Row{"chat continuation", params.Continuation})
			t.AppendRow(table.Row{"chat client", params.ClientName + "/" + params.ClientVersion})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
