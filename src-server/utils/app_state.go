package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// CachedView is one pre-rendered HTML fragment plus its render timestamp.
type CachedView struct {
	HTML       string
	RenderedAt time.Time
}

type AppState struct {
	StartedAt time.Time

	Config *Config
	RawDB  *sql.DB
	BunDB  *bun.DB
	// natural-language date parser for the ?start= query param
	When *when.Parser

	MetricChans        *Metric
	AppCloseSignalChan chan os.Signal

	// pre-rendered default views, written by the scheduler, read by routes
	viewCacheMu sync.RWMutex
	viewCache   map[string]CachedView

	gracefulShutdownMu    sync.Mutex
	gracefulShutdownChans []*chan struct{}
}

func NewAppState() *AppState {
	as := &AppState{
		StartedAt:          time.Now(),
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
		viewCache:          make(map[string]CachedView),
	}

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	// database
	var err error
	as.RawDB, err = sql.Open(sqliteshim.ShimName, "./sqlite.db?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as.RawDB.SetMaxIdleConns(8)
	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())

	return as
}

// SetCachedView stores a freshly rendered fragment under a view name
// ("week", "month").
func (as *AppState) SetCachedView(name, html string) {
	as.viewCacheMu.Lock()
	defer as.viewCacheMu.Unlock()
	as.viewCache[name] = CachedView{
		HTML:       html,
		RenderedAt: time.Now(),
	}
}

// GetCachedView returns the cached fragment if one exists and is younger
// than maxAge.
func (as *AppState) GetCachedView(name string, maxAge time.Duration) (string, bool) {
	as.viewCacheMu.RLock()
	defer as.viewCacheMu.RUnlock()
	cached, ok := as.viewCache[name]
	if !ok || time.Since(cached.RenderedAt) > maxAge {
		return "", false
	}
	return cached.HTML, true
}

// CreateGracefulShutdownChan hands out a channel that gets closed when the
// app shuts down; long-running goroutines select on it to unwind.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, &ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(*ch)
	}
	as.gracefulShutdownChans = nil
	if err := as.BunDB.Close(); err != nil {
		slog.Warn("can't close database", "error", err)
	}
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.StartedAt).Round(time.Second)
}
