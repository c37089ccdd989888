package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oarkflow/browser"
	"github.com/spf13/cobra"

	"github.com/vvka-141/picview/internal/config"
	"github.com/vvka-141/picview/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveFlags struct {
	addr    string
	open    bool
	origins []string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve picview commands over HTTP and WebSocket",
	Long: `Run the bridge a webview shell talks to.

  POST /invoke/<command>   body: JSON args, response: JSON result
  GET  /ws                 frames: {"id","command","args"} -> {"id","ok","result"|"error","kind"}
  GET  /healthz
  GET  /                   service name and command list

Commands: get_path_items, get_parent_path, get_image_base64, read_history,
write_history.

The address is taken from --addr, then $PICVIEW_ADDR, then server.addr in
picview.yaml, then ` + config.DefaultAddr + `.`,
	Example: `  picview serve
  picview serve --addr 127.0.0.1:9000 --open
  curl -s -XPOST localhost:7878/invoke/get_path_items -d '{"basePath":"."}'`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", config.DefaultAddr, "Listen address")
	serveCmd.Flags().BoolVar(&serveFlags.open, "open", false, "Open the bridge in the default browser once listening")
	serveCmd.Flags().StringSliceVar(&serveFlags.origins, "allow-origin", nil, "Origins allowed by CORS, http(s)://host[:port] (repeatable; default any)")
}

func resetServeFlags() {
	serveFlags.addr = config.DefaultAddr
	serveFlags.open = false
	serveFlags.origins = nil
	for _, name := range []string{"addr", "open", "allow-origin"} {
		serveCmd.Flags().Lookup(name).Changed = false
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := loadAppContext(cmd)
	if err != nil {
		return err
	}

	addr := resolveAddr(cmd, serveFlags.addr, app.Config)
	open := app.Config.Server.OpenBrowser
	if cmd.Flags().Changed("open") {
		open = serveFlags.open
	}
	origins := app.Config.Server.AllowedOrigins
	if cmd.Flags().Changed("allow-origin") {
		origins = serveFlags.origins
		if err := config.ValidateOrigins(origins); err != nil {
			return fmt.Errorf("--allow-origin: %w", err)
		}
	}

	srv := server.New(app.Dispatcher(), app.Logger, server.Options{AllowedOrigins: origins})

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listener(ln)
	}()

	if open {
		url := "http://" + ln.Addr().String()
		if err := browser.OpenURL(url); err != nil {
			app.Logger.Error("Could not open %s in a browser: %v", url, err)
		}
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		app.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
