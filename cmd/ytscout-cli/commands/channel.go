package commands

import (
	"os"

	"ytscout/lib/scrapers/youtube/scrape"
	"ytscout/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(channelCmd)
}

var channelCmd = &cobra.Command{
	Use:   "channel <channel id>",
	Short: "Shows a channel's title, subscriber count, icon, banner and live badge.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseChannelId(args[0])
		client := newClient()

		page, err := client.ChannelPage(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch channel page", err)
		}

		title, err := scrape.ChannelTitleFromChannelPage(page)
		if err != nil {
			serviceutil.Fatal("failed to extract channel title", err)
		}
		subscribers, err := scrape.SubscriberCount(page)
		if err != nil {
			serviceutil.Fatal("failed to extract subscriber count", err)
		}
		icon, err := scrape.OwnerIconFromChannelPage(page)
		if err != nil {
			serviceutil.Fatal("failed to extract owner icon", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"title", title.Title})
		t.AppendRow(table.Row{"subscribers", subscribers})
		t.AppendRow(table.Row{"icon", icon})
		if banner, ok := scrape.ChannelBanner(page); ok {
			t.AppendRow(table.Row{"banner", banner})
		}
		t.AppendRow(table.Row{"streaming now", scrape.HasLiveBadge(page)})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
