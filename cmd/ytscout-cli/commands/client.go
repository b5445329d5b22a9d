package commands

import (
	"os"
	"time"

	"ytscout/lib/configutil"
	"ytscout/lib/restyutil"
	"ytscout/lib/scrapers/youtube/pages"
	"ytscout/lib/scrapers/youtube/ytid"
	"ytscout/lib/serviceutil"
)

type Config struct {
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	// when set, every http exchange is written to this directory
	CaptureDir string `json:"capture_dir"`
}

func newClient() *pages.Client {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}

	var capture restyutil.InstrumentOutput
	if cfg.CaptureDir != "" {
		capture = restyutil.NewFilesystemOutput(cfg.CaptureDir)
	}

	return pages.NewClient(pages.ClientOptions{
		UserAgent: cfg.UserAgent,
		Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		Capture:   capture,
	})
}

func parseChannelId(raw string) ytid.ChannelId {
	id, err := ytid.NewChannelId(raw)
	if err != nil {
		serviceutil.Fatal("invalid channel id", err)
	}
	return id
}

func parseVideoId(raw string) ytid.VideoId {
	id, err := ytid.NewVideoId(raw)
	if err != nil {
		serviceutil.Fatal("invalid video id", err)
	}
	return id
}
