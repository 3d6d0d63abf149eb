package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmorgan81/logoforge/internal/logo"
	"github.com/dmorgan81/logoforge/internal/page"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

const unexpectedError = "An unexpected error occurred."

type LogoService interface {
	Generate(context.Context, logo.Params) (string, error)
}

type Server struct {
	service   LogoService
	templator *page.Templator
	logger    *slog.Logger
	router    *gin.Engine
}

func NewServer(i *do.Injector) (*Server, error) {
	return New(
		do.MustInvoke[*logo.Service](i),
		do.MustInvoke[*page.Templator](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

func New(service LogoService, templator *page.Templator, logger *slog.Logger) *Server {
	s := &Server{
		service:   service,
		templator: templator,
		logger:    logger,
	}
	s.router = s.generateRouter()
	return s
}

func (s *Server) generateRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	router.GET("/", s.index)
	router.POST("/", s.submit)
	router.POST("/api/logo", s.generate)
	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return router
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve blocks until ctx is cancelled or the listener fails. A cancelled ctx
// triggers a graceful shutdown and is not reported as an error.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("starting server", "address", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

func (s *Server) index(c *gin.Context) {
	s.render(c, http.StatusOK, page.View{})
}

func (s *Server) submit(c *gin.Context) {
	var params logo.Params
	if err := c.ShouldBind(&params); err != nil {
		s.render(c, http.StatusBadRequest, page.View{Error: userMessage(err)})
		return
	}

	view := page.View{BusinessIdea: params.BusinessIdea, LogoStyle: params.Style}
	if err := params.Validate(); err != nil {
		view.Error = userMessage(err)
		s.render(c, http.StatusBadRequest, view)
		return
	}

	uri, err := s.service.Generate(c.Request.Context(), params)
	if err != nil {
		view.Error = userMessage(err)
		s.render(c, http.StatusBadGateway, view)
		return
	}

	view.ImageURL = uri
	s.render(c, http.StatusOK, view)
}

type logoResponse struct {
	ImageURL string `json:"imageUrl,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) generate(c *gin.Context) {
	var params logo.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, logoResponse{Error: "Invalid request body."})
		return
	}
	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, logoResponse{Error: userMessage(err)})
		return
	}

	uri, err := s.service.Generate(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadGateway, logoResponse{Error: userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, logoResponse{ImageURL: uri})
}

func (s *Server) render(c *gin.Context, status int, view page.View) {
	html, err := s.templator.Render(c.Request.Context(), view)
	if err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, unexpectedError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", html)
}

// userMessage turns an error into the sentence shown to the user.
func userMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return unexpectedError
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
