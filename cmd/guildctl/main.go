package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/broady/guildhttp"
	"github.com/broady/guildhttp/middleware"
	"github.com/broady/guildhttp/model"
	"github.com/broady/guildhttp/request"
	"github.com/broady/guildhttp/transport"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

type Globals struct {
	Config  string        `help:"YAML file providing token, base_url, timeout and rate." env:"GUILDCTL_CONFIG" type:"path"`
	Token   string        `help:"Bot token." env:"GUILDCTL_TOKEN"`
	BaseURL string        `help:"API base URL." env:"GUILDCTL_BASE_URL" name:"base-url"`
	Timeout time.Duration `help:"Per-request timeout (default 30s)."`
	Rate    float64       `help:"Maximum requests per second. Zero disables throttling."`
	DryRun  bool          `help:"Print the request instead of sending it." name:"dry-run" short:"n"`
	Verbose bool          `help:"Log requests to stderr." short:"v"`
	Metrics string        `help:"Write Prometheus metrics for the sent requests to this file." type:"path"`

	stdout   io.Writer            `kong:"-"`
	registry *prometheus.Registry `kong:"-"`
}

type CLI struct {
	Globals

	Version VersionCmd `cmd:"" help:"Print version information."`
	Emojis  EmojisCmd  `cmd:"" help:"List the custom emojis of a guild."`
	Pins    PinsCmd    `cmd:"" help:"List the pinned messages of a channel."`
	Unban   UnbanCmd   `cmd:"" help:"Remove a user's ban from a guild."`
	Threads ThreadsCmd `cmd:"" help:"List archived private threads you have joined."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	fmt.Fprintln(g.stdout, Version())
	return nil
}

type EmojisCmd struct {
	Guild model.GuildID `arg:"" help:"Guild ID."`
}

func (c *EmojisCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.client()
	if err != nil {
		return err
	}
	return run[[]model.Emoji](ctx, g, client.Emojis(c.Guild))
}

type PinsCmd struct {
	Channel model.ChannelID `arg:"" help:"Channel ID."`
}

func (c *PinsCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.client()
	if err != nil {
		return err
	}
	return run[[]model.Message](ctx, g, client.Pins(c.Channel))
}

type UnbanCmd struct {
	Guild  model.GuildID `arg:"" help:"Guild ID."`
	User   model.UserID  `arg:"" help:"User ID."`
	Reason string        `help:"Audit log reason." short:"r"`
}

func (c *UnbanCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.client()
	if err != nil {
		return err
	}
	b := client.DeleteBan(c.Guild, c.User)
	if c.Reason != "" {
		if _, err := b.Reason(c.Reason); err != nil {
			return err
		}
	}
	return run[guildhttp.EmptyBody](ctx, g, b)
}

type ThreadsCmd struct {
	Channel model.ChannelID `arg:"" help:"Channel ID."`
	Before  model.ChannelID `help:"Only list threads with a lower ID."`
	Limit   uint64          `help:"Maximum number of threads. Zero uses the API default."`
}

func (c *ThreadsCmd) Run(ctx context.Context, g *Globals) error {
	client, err := g.client()
	if err != nil {
		return err
	}
	b := client.JoinedPrivateArchivedThreads(c.Channel)
	if c.Before != 0 {
		b.Before(c.Before)
	}
	if c.Limit != 0 {
		b.Limit(c.Limit)
	}
	return run[model.ThreadsListing](ctx, g, b)
}

func (g *Globals) client() (*guildhttp.Client, error) {
	if err := g.load(); err != nil {
		return nil, err
	}
	if g.Token == "" && !g.DryRun {
		return nil, errors.New("a bot token is required: set --token or GUILDCTL_TOKEN")
	}

	level := slog.LevelWarn
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []transport.Option{
		transport.WithHTTPClient(&http.Client{Timeout: g.Timeout}),
		transport.WithUserAgent("guildctl/"+Version()),
		transport.WithLogger(logger),
	}
	if g.BaseURL != "" {
		opts = append(opts, transport.WithBaseURL(g.BaseURL))
	}
	client := guildhttp.NewClient(g.Token, opts...).WithLogger(logger)

	if g.Verbose {
		client.WithInterceptor(middleware.Logging(logger))
	}
	if g.Rate > 0 {
		client.WithInterceptor(middleware.RateLimit(rate.NewLimiter(rate.Limit(g.Rate), 1)))
	}
	if g.Metrics != "" {
		g.registry = prometheus.NewRegistry()
		client.WithInterceptor(middleware.NewMetrics(g.registry).Interceptor())
	}
	return client, nil
}

// flushMetrics writes collected metrics when --metrics was given.
func (g *Globals) flushMetrics() error {
	if g.registry == nil {
		return nil
	}
	return prometheus.WriteToTextfile(g.Metrics, g.registry)
}

// builder is implemented by every endpoint builder.
type builder[T any] interface {
	request.TryIntoRequest
	Exec(ctx context.Context) *guildhttp.ResponseFuture[T]
}

// run sends b, or prints it under --dry-run, and writes the decoded result
// to stdout as JSON.
func run[T any](ctx context.Context, g *Globals, b builder[T]) error {
	if g.DryRun {
		req, err := b.TryIntoRequest()
		if err != nil {
			return err
		}
		printRequest(g.stdout, req)
		return nil
	}

	resp, err := b.Exec(ctx).Await(ctx)
	if err != nil {
		return err
	}
	if _, empty := any((*T)(nil)).(*guildhttp.EmptyBody); empty {
		fmt.Fprintln(g.stdout, resp.Status(), http.StatusText(resp.Status()))
		return nil
	}
	v, err := resp.Model()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(g.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printRequest(w io.Writer, req request.Request) {
	fmt.Fprintf(w, "%s /%s\n", req.Method(), req.PathAndQuery())
	h := req.Headers()
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range h[name] {
			fmt.Fprintf(w, "%s: %s\n", name, v)
		}
	}
	if body := req.Body(); len(body) > 0 {
		fmt.Fprintf(w, "\n%s\n", body)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	cli.stdout = os.Stdout
	kctx := kong.Parse(cli,
		kong.Name("guildctl"),
		kong.Description("Build and send guild and channel API requests."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	err := kctx.Run()
	if ferr := cli.flushMetrics(); err == nil {
		err = ferr
	}
	kctx.FatalIfErrorf(err)
}
