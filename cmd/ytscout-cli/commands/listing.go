package commands

import (
	"os"

	"ytscout/lib/scrapers/youtube/videolist"
	"ytscout/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(streamsCmd)
}

func renderListing(items []videolist.Item) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Video", "Title", "Duration"})
	for i, item := range items {
		duration := item.Duration
		if item.Kind == videolist.KindNotFinishedLive {
			duration = "live/upcoming"
		}
		t.AppendRow(table.Row{i + 1, item.VideoId.Id, item.Title.Title, duration})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

var videosCmd = &cobra.Command{
	Use:   "videos <channel id>",
	Short: "Lists a channel's latest uploaded videos.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseChannelId(args[0])
		client := newClient()

		page, err := client.VideosPage(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch videos page", err)
		}
		items, err := videolist.LatestVideos(page)
		if err != nil {
			serviceutil.Fatal("failed to extract video listing", err)
		}
		renderListing(items)
	},
}

var streamsCmd = &cobra.Command{
	Use:   "streams <channel id>",
	Short: "Lists a channel's latest broadcasts, live and upcoming ones first.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseChannelId(args[0])
		client := newClient()

		page, err := client.StreamsPage(cmd.Context(), id)
		if err != nil {
			serviceutil.Fatal("failed to fetch streams page", err)
		}
		items, err := videolist.LatestStreams(page)
		if err != nil {
			serviceutil.Fatal("failed to extract stream listing", err)
		}
		renderListing(items)
	},
}
