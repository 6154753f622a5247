// Package server exposes the plugin's commands over HTTP for chat gateways.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/mpm/ghbot/internal/config"
	"github.com/mpm/ghbot/internal/plugin"
)

// FailureReply is sent to chat when a lookup fails for reasons other than a
// missing issue.
const FailureReply = "Sorry, something went wrong talking to GitHub."

// CommandRequest is either a raw chat line in Text, or a command name with
// pre-split arguments.
type CommandRequest struct {
	Text    string   `json:"text,omitempty"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
}

// CommandResponse carries the reply to post back to chat.
type CommandResponse struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// Server serves POST /command and GET /health.
type Server struct {
	echo   *echo.Echo
	plugin *plugin.Plugin
	log    *logrus.Logger
	secret string
	addr   string
}

// New creates a server for p. When cfg.Secret is set every command request
// must carry a valid X-Signature-256 header.
func New(p *plugin.Plugin, cfg config.ServerConfig, log *logrus.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		plugin: p,
		log:    log,
		secret: cfg.Secret,
		addr:   fmt.Sprintf("%s:%d", cfg.Addr, cfg.Port),
	}

	e.Use(middleware.Recover())
	e.Use(LoggingMiddleware(log))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/command", s.handleCommand)

	return s
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithField("addr", s.addr).Info("chat endpoint listening")
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight commands.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleCommand(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, CommandResponse{Error: "failed to read body"})
	}

	if s.secret != "" {
		if err := ValidateSignature(body, c.Request().Header.Get(SignatureHeader), s.secret); err != nil {
			return c.JSON(http.StatusUnauthorized, CommandResponse{Error: err.Error()})
		}
	}

	var req CommandRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.JSON(http.StatusBadRequest, CommandResponse{Error: "invalid JSON body"})
	}

	ctx := c.Request().Context()
	var reply string
	switch {
	case req.Text != "":
		reply, err = s.plugin.HandleLine(ctx, req.Text)
	case req.Command != "":
		reply, err = s.plugin.Handle(ctx, req.Command, req.Args)
	default:
		return c.JSON(http.StatusBadRequest, CommandResponse{Error: "text or command is required"})
	}

	switch {
	case errors.Is(err, plugin.ErrNotCommand):
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, plugin.ErrUnknownCommand):
		return c.JSON(http.StatusNotFound, CommandResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadGateway, CommandResponse{Reply: FailureReply, Error: err.Error()})
	}

	return c.JSON(http.StatusOK, CommandResponse{Reply: reply})
}
