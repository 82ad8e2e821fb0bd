// Package main starts the AirPad host server.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/airpad-labs/airpad/internal/app"
	"github.com/airpad-labs/airpad/internal/config"
	"github.com/airpad-labs/airpad/internal/display"
	"github.com/airpad-labs/airpad/internal/hostinput"
)

// run wires the application and blocks until shutdown.
func run(addrOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.ListenAddr = addrOverride
	}
	logStartup(cfg)

	injector := hostinput.NewInjector()
	auth := hostinput.NewAuthorizer()
	if !auth.Trusted() {
		log.Printf("input permission: not granted; events will be discarded until granted")
	}

	appInstance, err := app.New(cfg, injector, auth, display.Primary)
	if err != nil {
		return err
	}
	if err := appInstance.Start(); err != nil {
		return err
	}
	defer func() {
		if err := appInstance.Stop(); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux)
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			appInstance.State().SetError(err.Error())
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("AirPad starting")
	logEnvStatus()
	log.Printf("instance name: %s", cfg.InstanceName)
	if cfg.MDNSEnabled {
		log.Printf("mdns: enabled")
	} else {
		log.Printf("mdns: disabled")
	}
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found.
func logEnvStatus() {
	if fileExists(".env") {
		log.Printf("env check: ok (.env)")
	} else {
		log.Printf("env check: no .env file, using defaults")
	}
}

// logListenStatus reports the listen address and the trackpad endpoint.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("trackpad url: ws://%s/ws/trackpad", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
