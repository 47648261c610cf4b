package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	restapi "github.com/tzscout/tzscout/api/rest"
	"github.com/tzscout/tzscout/internal/explorer"
	"github.com/tzscout/tzscout/internal/httpmw"
	"github.com/tzscout/tzscout/internal/notify"
	"github.com/tzscout/tzscout/internal/promreg"
	"github.com/tzscout/tzscout/internal/router"
	"github.com/tzscout/tzscout/internal/session"
	"github.com/tzscout/tzscout/internal/tzkt"
	"github.com/tzscout/tzscout/internal/view"
)

// protectedPathPrefixes is the allow-list of API paths that receive the
// bearer credential.
var protectedPathPrefixes = []string{"/v1/profile", "/v1/notes"}

type Options struct {
	ServerAddr       string
	APIBaseURL       string
	CacheTTL         time.Duration
	PollInterval     time.Duration
	BatchConcurrency int
	SessionFile      string
	BrowseURL        string
	Verbose          bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server-addr", "localhost:8080", "Addr to serve the explorer gateway on")
	flag.StringVar(&opts.APIBaseURL, "api-base", tzkt.DefaultBaseURL, "Base URL of the chain indexing API")
	flag.DurationVar(&opts.CacheTTL, "cache-ttl", httpmw.DefaultCacheTTL, "TTL of the GET response cache")
	flag.DurationVar(&opts.PollInterval, "poll-interval", router.DefaultPollInterval, "Overview count refresh interval")
	flag.IntVar(&opts.BatchConcurrency, "batch-concurrency", explorer.DefaultBatchConcurrency, "Max simultaneous sub-requests of batch loads")
	flag.StringVar(&opts.SessionFile, "session-file", defaultSessionFile(), "Path of the persisted session file")
	flag.StringVar(&opts.BrowseURL, "browse", "", "Render the given explorer URL to stdout and exit")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	ensureValidOpts(logger, opts)

	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sink := notify.NewSink(64)
	sink.Subscribe(notify.LogHandler(logger))
	sessions := session.Open(logger, opts.SessionFile)

	httpClient := &http.Client{Timeout: time.Second * 10}
	chain := httpmw.NewLoadingDoer(httpmw.NewLoadCounter(),
		httpmw.NewAuthDoer(sessions, protectedPathPrefixes,
			httpmw.NewCacheDoer(logger, opts.CacheTTL, httpmw.DefaultCacheSize,
				httpmw.NewErrorDoer(logger, sink,
					httpmw.NewRetryDoer(logger, httpClient)))))

	client := tzkt.New(logger, chain, opts.APIBaseURL)
	store := explorer.New(logger, client, opts.BatchConcurrency)
	nav := router.New(logger, store, opts.PollInterval)

	if opts.BrowseURL != "" {
		browseOnce(ctx, logger, nav, store, opts.BrowseURL)
		return
	}

	go func() {
		err := nav.Run(ctx, "/")
		if err != nil {
			logger.WithError(err).Error("Router stopped with error")
		}
	}()

	restServer := restapi.NewServer(logger, nav, store, sink)
	mux := http.NewServeMux()
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/overview", restServer.GetOverview)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/blocks/{level}", restServer.GetBlock)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/accounts/{address}", restServer.GetAccount)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/search", restServer.Search)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/notifications", restServer.GetNotifications)
	restapi.RegisterFunc(logger, mux, http.MethodGet, "/api/v1/errors", restServer.GetErrors)

	mux.Handle("/metrics", promreg.Handler())

	mustListenAndServe(ctx, logger, opts.ServerAddr, mux)
}

// browseOnce applies a single navigation and renders the resulting snapshot
// as terminal tables.
func browseOnce(ctx context.Context, logger *logrus.Logger, nav *router.Router, store *explorer.Store, rawURL string) {
	err := nav.Navigate(ctx, rawURL)
	if err != nil {
		logger.WithError(err).WithField("url", rawURL).Warn("Navigation finished with errors")
	}

	route, err := router.ParseRoute(rawURL)
	if err != nil {
		logger.WithError(err).Fatal("Invalid browse URL")
	}
	view.Render(os.Stdout, route, store.Snapshot())
}

func mustListenAndServe(ctx context.Context, logger *logrus.Logger, addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		logger.WithField("addr", addr).Info("Serving explorer gateway...")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed with error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	logger.Info("Shutting down server...")
	err := srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.WithError(err).Error("Failed to shutdown server gracefully")
	}
}

func ensureValidOpts(logger *logrus.Logger, opts Options) {
	if opts.ServerAddr == "" && opts.BrowseURL == "" {
		logger.Error("--server-addr is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.APIBaseURL == "" {
		logger.Error("--api-base is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.PollInterval < time.Second*5 {
		logger.Error("--poll-interval is too small, it cannot be less than 5 seconds")
		flag.Usage()
		os.Exit(1)
	}
	if opts.BatchConcurrency < 1 {
		logger.Error("--batch-concurrency cannot be less than 1")
		flag.Usage()
		os.Exit(1)
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".tzscout-session.json"
	}
	return filepath.Join(dir, "tzscout", "session.json")
}
