package server

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/vvka-141/picview/internal/ipc"
	"github.com/vvka-141/picview/pkg/picview"
)

// Options configures the HTTP surface.
type Options struct {
	// AllowedOrigins lists the origins permitted by CORS. Empty allows any.
	// Entries must pass config.ValidateOrigins; cors.New panics otherwise.
	AllowedOrigins []string
}

// Server exposes a Dispatcher over HTTP and WebSocket.
type Server struct {
	app        *fiber.App
	dispatcher *ipc.Dispatcher
	logger     picview.Logger
}

// New builds the fiber app and registers all routes. Panics on nil dependencies.
func New(dispatcher *ipc.Dispatcher, logger picview.Logger, opts Options) *Server {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	s := &Server{dispatcher: dispatcher, logger: logger}
	s.app = fiber.New(fiber.Config{
		AppName:               "picview",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleFiberError,
	})

	allowOrigins := "*"
	if len(opts.AllowedOrigins) > 0 {
		allowOrigins = strings.Join(opts.AllowedOrigins, ",")
	}

	s.app.Use(recover.New())
	s.app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${method} ${path} -> ${status} (${latency})\n",
		Output: verboseWriter{logger},
	}))
	s.app.Use(cors.New(cors.Config{AllowOrigins: allowOrigins}))

	s.app.Get("/", s.handleIndex)
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Post("/invoke/:command", s.handleInvoke)

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws", websocket.New(s.handleWebSocket))

	return s
}

// App returns the underlying fiber app, for tests and embedding.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.logger.Info("Serving picview on http://%s", addr)
	return s.app.Listen(addr)
}

// Listener serves on an existing listener until Shutdown is called.
func (s *Server) Listener(ln net.Listener) error {
	s.logger.Info("Serving picview on http://%s", ln.Addr())
	return s.app.Listener(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":     "picview",
		"commands": s.dispatcher.Commands(),
	})
}

func (s *Server) handleInvoke(c *fiber.Ctx) error {
	command := c.Params("command")

	// c.Body is only valid for the duration of the handler; Invoke is synchronous.
	result, err := s.dispatcher.Invoke(c.UserContext(), command, c.Body())
	if err != nil {
		s.logger.Error("%s failed: %v", command, err)
		return c.Status(statusFor(err)).JSON(ipc.ErrorBody{Error: err.Error(), Kind: ipc.KindOf(err)})
	}
	return c.JSON(result)
}

// handleFiberError renders routing and middleware errors in the same
// shape as command failures.
func (s *Server) handleFiberError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		s.logger.Error("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(ipc.ErrorBody{Error: err.Error(), Kind: ipc.KindInternal})
}

// statusFor maps a command failure to an HTTP status.
func statusFor(err error) int {
	switch ipc.KindOf(err) {
	case ipc.KindUnknownFormat, ipc.KindUnsupportedFormat:
		return fiber.StatusUnsupportedMediaType
	case ipc.KindReadError:
		if errors.Is(err, fs.ErrNotExist) {
			return fiber.StatusNotFound
		}
		return fiber.StatusInternalServerError
	case ipc.KindInvalidArguments:
		return fiber.StatusBadRequest
	case ipc.KindUnknownCommand:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// verboseWriter routes the request log into the verbose channel.
type verboseWriter struct {
	logger picview.Logger
}

func (w verboseWriter) Write(p []byte) (int, error) {
	w.logger.Verbose("%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
