package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/PeopleHub450/hr-kpi-dashboard/internal/config"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/server"
	"github.com/PeopleHub450/hr-kpi-dashboard/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (overrides config.toml)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config.toml)")
	noOpen  = flag.Bool("no-open", false, "do not open the browser on startup")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Warn("config load failed, using defaults")
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if cfg.Server.DevMode {
		logger.SetLevel(logrus.DebugLevel)
	}

	srv := server.NewServer(cfg, logger)
	defer srv.Close()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("HR KPI dashboard starting")
		if err := srv.Run(cfg.Server.Port); err != nil {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	if !cfg.Server.DevMode && !*noOpen {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			logger.Infof("open %s manually", url)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
}
