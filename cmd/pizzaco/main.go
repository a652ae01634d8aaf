// Command pizzaco is a terminal storefront for a pizza shop.
//
// Usage:
//
//	pizzaco [-verbose] [-quiet] [-no-chime] [-log-file path] [-tick 1s]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/pizzaco/internal/availability"
	"github.com/hammamikhairi/pizzaco/internal/catalog"
	"github.com/hammamikhairi/pizzaco/internal/chime"
	"github.com/hammamikhairi/pizzaco/internal/clock"
	"github.com/hammamikhairi/pizzaco/internal/config"
	"github.com/hammamikhairi/pizzaco/internal/conversation"
	"github.com/hammamikhairi/pizzaco/internal/display"
	"github.com/hammamikhairi/pizzaco/internal/domain"
	"github.com/hammamikhairi/pizzaco/internal/ledger"
	"github.com/hammamikhairi/pizzaco/internal/logger"
	"github.com/hammamikhairi/pizzaco/internal/shop"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	verbose := flag.Bool("verbose", cfg.LogLevel == logger.LevelVerbose, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", cfg.LogLevel == logger.LevelOff, "disable all logging")
	logFile := flag.String("log-file", cfg.LogFile, "file to write logs to (use \"stderr\" to log to console)")
	noChime := flag.Bool("no-chime", !cfg.Chime, "disable the notification chime")
	tick := flag.Duration("tick", cfg.TickInterval, "how often the clock refreshes")
	openHour := flag.Int("open", cfg.Hours.Open, "opening hour (0-23)")
	closeHour := flag.Int("close", cfg.Hours.Close, "closing hour (1-24, exclusive)")
	flag.Parse()

	cfg.TickInterval = *tick
	cfg.Hours = availability.Hours{Open: *openHour, Close: *closeHour}
	cfg.LogFile = *logFile
	cfg.Chime = !*noChime
	switch {
	case *quiet:
		cfg.LogLevel = logger.LevelOff
	case *verbose:
		cfg.LogLevel = logger.LevelVerbose
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Logs go to a file by default so the storefront stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libraries using the standard log package write to the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(cfg.LogLevel, logOut)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	menu, err := catalog.NewMemoryCatalog(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading menu: %v\n", err)
		os.Exit(1)
	}
	orders := ledger.NewMemory(log)
	ticker := clock.New(log, clock.WithInterval(cfg.TickInterval))

	// The UI needs an initial status before the session exists; both are
	// seeded from the same instant.
	start := ticker.Now()
	ui := display.NewUI(cfg.ShopName, domain.ShopStatus{Now: start, Open: cfg.Hours.Contains(start)})

	var notifier domain.Notifier = conversation.NewCLINotifier(log, ui.Printf)
	if cfg.Chime {
		player, err := chime.NewPlayer(log)
		if err != nil {
			log.Error("audio player init failed, chime disabled: %v", err)
		} else {
			chimer := chime.NewNotifier(notifier, player, log)
			notifier = chimer
			defer chimer.Wait()
			defer player.Stop()
			log.Info("chime enabled")
		}
	}

	session := shop.New(menu, orders, notifier, log, start, shop.WithHours(cfg.Hours))

	// Each tick updates the session first, then the status bar, so the
	// bar always shows availability for the time it displays.
	ticker.Subscribe(session.Tick)
	ticker.Subscribe(func(ctx context.Context, _ time.Time) {
		ui.Refresh(session.Status(ctx))
	})

	ticker.Start(ctx)
	defer ticker.Stop()

	app := &cliApp{
		session:  session,
		parser:   conversation.NewKeywordParser(log),
		log:      log.With("app"),
		ui:       ui,
		shopName: cfg.ShopName,
	}

	fmt.Println(display.RenderBanner(cfg.ShopName))
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal and blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}
