package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tinytelemetry/factcard/internal/model"
)

var errNotListening = errors.New("mockapi: Serve called before Listen")

// Server impersonates the public cat fact and joke APIs with scripted
// status codes, so the fact screen can be exercised without the network.
type Server struct {
	addr      string
	script    *StatusScript
	sentences *sentenceSource
	logger    zerolog.Logger
	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
	jokeSeq   atomic.Int64
	served    atomic.Int64
}

// Option configures a Server.
type Option func(s *Server)

// WithStatuses sets the status cycle. Default: always 200.
func WithStatuses(statuses []int) Option {
	return func(s *Server) {
		s.script = NewStatusScript(statuses)
	}
}

// WithSeed makes generated sentences deterministic.
func WithSeed(seed uint64) Option {
	return func(s *Server) {
		s.sentences = newSentenceSource(seed)
	}
}

// WithLogger sets the request logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a new mock API server.
func NewServer(addr string, opts ...Option) *Server {
	if addr == "" {
		addr = model.DefaultMockAddr
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr:      addr,
		script:    NewStatusScript(nil),
		sentences: newSentenceSource(uint64(time.Now().UnixNano())),
		logger:    zerolog.Nop(),
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/health", s.handleHealth)
	r.GET("/facts/random", s.scripted(s.handleFact))
	r.GET("/jokes/random", s.scripted(s.handleJoke))
	r.POST("/script/reset", s.handleReset)

	return r
}

// Listen binds the listening socket. Serve must be called afterwards.
func (s *Server) Listen() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener
	s.startTime = time.Now()
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("mockapi: listening")
	return nil
}

// Serve blocks serving requests on the bound listener. It returns nil once
// Stop shuts the server down.
func (s *Server) Serve() error {
	if s.server == nil || s.listener == nil {
		return errNotListening
	}
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mockapi: serve: %w", err)
	}
	return nil
}

// Start binds and serves in the background.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	go func() {
		if err := s.Serve(); err != nil {
			s.logger.Error().Err(err).Msg("mockapi: server stopped")
		}
	}()
	return nil
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// scriptedHandler writes a successful body with the given 2xx status.
type scriptedHandler func(c *gin.Context, code int)

// scripted answers with the next scripted status, or with ?status=NNN when
// given, and only calls h for 2xx.
func (s *Server) scripted(h scriptedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := s.script.Next()
		if q := c.Query("status"); q != "" {
			if v, err := strconv.Atoi(q); err == nil && ValidateStatus(v) == nil {
				code = v
			}
		}
		s.served.Add(1)

		if code < 200 || code > 299 {
			c.String(code, failureBody(code))
			return
		}
		h(c, code)
	}
}

func failureBody(code int) string {
	if code == http.StatusInternalServerError {
		return "Internal server error"
	}
	return http.StatusText(code)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
		"served": s.served.Load(),
	})
}

func (s *Server) handleFact(c *gin.Context, code int) {
	animal := c.DefaultQuery("animal_type", "cat")
	c.JSON(code, gin.H{
		"_id":     uuid.NewString(),
		"text":    s.sentences.Sentence(),
		"type":    animal,
		"deleted": false,
		"used":    false,
	})
}

func (s *Server) handleJoke(c *gin.Context, code int) {
	c.JSON(code, gin.H{
		"type": "success",
		"value": gin.H{
			"id":         s.jokeSeq.Add(1),
			"joke":       s.sentences.Sentence(),
			"categories": []string{},
		},
	})
}

func (s *Server) handleReset(c *gin.Context) {
	s.script.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("mockapi: request")
	}
}
