// Command studyplanner-server runs the study planner MCP server.
//
// By default it speaks JSON-RPC over stdio against a Firestore project
// named by GOOGLE_CLOUD_PROJECT (or FIREBASE_PROJECT_ID), loading
// credentials from GOOGLE_APPLICATION_CREDENTIALS when set. Setting
// STUDYPLANNER_HTTP_ADDR serves HTTP (/mcp) and SSE (/sse) instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jonwraymond/studyplanner/dispatcher"
	"github.com/jonwraymond/studyplanner/server"
	"github.com/jonwraymond/studyplanner/store"
)

const (
	serverName    = "studyplanner-mcp-server"
	serverVersion = "1.0.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "server error:", err)
		os.Exit(1)
	}
}

func run() error {
	memory := flag.Bool("memory", false, "use the in-memory store instead of Firestore")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var gateway store.Gateway
	if *memory {
		gateway = store.NewMemoryGateway()
	} else {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		if projectID == "" {
			projectID = os.Getenv("FIREBASE_PROJECT_ID")
		}
		if projectID == "" {
			return errors.New("GOOGLE_CLOUD_PROJECT (or FIREBASE_PROJECT_ID) is not set")
		}

		fg, err := store.NewFirestoreGateway(ctx, projectID, os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
		if err != nil {
			return err
		}
		defer func() {
			_ = fg.Close()
		}()
		gateway = fg
	}

	srv := server.New(server.Info{Name: serverName, Version: serverVersion}, dispatcher.New(gateway), logger)

	if addr := os.Getenv("STUDYPLANNER_HTTP_ADDR"); addr != "" {
		return serveHTTP(ctx, srv, addr, logger)
	}

	logger.Info("study planner MCP server running on stdio")
	return srv.ServeStdio(ctx, os.Stdin, os.Stdout)
}

func serveHTTP(ctx context.Context, srv *server.Server, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", srv.HTTPHandler())
	mux.Handle("/sse", srv.SSEHandler())

	httpServer := &http.Server{Addr: addr, Handler: mux}
	go func() {
		<-ctx.Done()
		_ = httpServer.Shutdown(context.Background())
	}()

	logger.Info("study planner MCP server listening", "addr", addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
