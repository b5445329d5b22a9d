package pages

import (
	"context"
	"time"

	"ytscout/lib/restyutil"
	"ytscout/lib/scrapers/youtube/ytid"
	"ytscout/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/youtube/pages")

const defaultBaseUrl = "https://www.youtube.com"
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	Http *resty.Client
}

type ClientOptions struct {
	// overrides https://www.youtube.com, tests point this at a stub server
	BaseUrl   string
	UserAgent string
	Timeout   time.Duration
	// when set, every full http exchange is written out for debugging
	// page shape breakage
	Capture restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) *Client {
	baseUrl := opts.BaseUrl
	if baseUrl == "" {
		baseUrl = defaultBaseUrl
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(timeout)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(
		"www.youtube.com",
		"youtube.com",
		"consent.youtube.com",
	))

	telemetry.InstrumentResty(client, "scrapers/youtube/http", opts.Capture)

	return &Client{Http: client}
}

func channelPath(id ytid.ChannelId, suffix string) string {
	if id.IsHandle {
		return "/" + id.Id + suffix
	}
	return "/channel/" + id.Id + suffix
}

// exactly one network fetch; transport errors pass through unmodified
func (c *Client) fetch(ctx context.Context, path string) (string, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return "", err
	}
	return res.String(), nil
}

func (c *Client) VideoPage(ctx context.Context, id ytid.VideoId) (*VideoPage, error) {
	ctx, span := tracer.Start(ctx, "client:VideoPage")
	defer span.End()

	markup, err := c.fetch(ctx, "/watch?v="+id.Id)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	return VideoPageFromHTML(id, markup)
}

func (c *Client) ChannelPage(ctx context.Context, id ytid.ChannelId) (*ChannelPage, error) {
	ctx, span := tracer.Start(ctx, "client:ChannelPage")
	defer span.End()

	markup, err := c.fetch(ctx, channelPath(id, ""))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	return ChannelPageFromHTML(id, markup)
}

func (c *Client) VideosPage(ctx context.Context, id ytid.ChannelId) (*VideosPage, error) {
	ctx, span := tracer.Start(ctx, "client:VideosPage")
	defer span.End()

	markup, err := c.fetch(ctx, channelPath(id, "/videos"))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	return VideosPageFromHTML(id, markup)
}

func (c *Client) StreamsPage(ctx context.Context, id ytid.ChannelId) (*StreamsPage, error) {
	ctx, span := tracer.Start(ctx, "client:StreamsPage")
	defer span.End()

	markup, err := c.fetch(ctx, channelPath(id, "/streams"))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	return StreamsPageFromHTML(id, markup)
}

// LivePage resolves the ambiguous /live endpoint into either a video
// snapshot (a broadcast is active or scheduled) or a channel snapshot,
// from a single fetch. See LivePageFromHTML for the classification rule.
func (c *Client) LivePage(ctx context.Context, id ytid.ChannelId) (Page, error) {
	ctx, span := tracer.Start(ctx, "client:LivePage")
	defer span.End()

	markup, err := c.fetch(ctx, channelPath(id, "/live"))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	page, err := LivePageFromHTML(id, markup)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to classify live page")
		return nil, err
	}
	return page, nil
}
