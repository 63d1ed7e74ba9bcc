// Package reportserver serves a single rendered report over a local listener.
package reportserver

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
	"github.com/Sixteen1-6/ParkingLot/internal/ports"
)

// DefaultPort is the pre-agreed local report port.
const DefaultPort = 8077

// Server binds one local port and answers every request, any path and any
// method, with the same immutable document. It is a one-shot local viewer,
// not a web service: nothing shuts it down but process exit.
type Server struct {
	host string
	port int
	log  *zap.Logger
}

type Option func(*Server)

// WithPort overrides the default report port.
func WithPort(port int) Option {
	return func(s *Server) { s.port = port }
}

// WithLogger attaches a logger for request-level debug output.
func WithLogger(log *zap.Logger) Option {
	return func(s *Server) { s.log = log }
}

func New(opts ...Option) *Server {
	s := &Server{
		host: "127.0.0.1",
		port: DefaultPort,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportServer = (*Server)(nil)

// Serve binds the listener and starts answering in the background. Binding is
// all-or-nothing: a port already in use surfaces immediately as a server_bind
// error and nothing is served.
func (s *Server) Serve(doc domain.ReportDocument) (ports.ReportHandle, error) {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "reportserver.serve",
			Kind: domain.KindServerBind,
			Path: addr,
			Err:  err,
		}
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// No routing: NoRoute catches every path and method.
	engine.NoRoute(func(c *gin.Context) {
		s.log.Debug("report request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path))
		c.Data(http.StatusOK, "text/html; charset=utf-8", doc.Bytes())
	})

	h := &Handle{listener: ln}
	go func() {
		// Serve returns only when the listener closes; the document outlives
		// every connection, so no locking is needed.
		if err := http.Serve(ln, engine); err != nil && !errors.Is(err, net.ErrClosed) {
			s.log.Warn("report listener stopped", zap.Error(err))
		}
	}()

	s.log.Info("report server listening", zap.String("url", h.URL()))
	return h, nil
}

// Handle is a bound report listener.
type Handle struct {
	listener net.Listener
}

var _ ports.ReportHandle = (*Handle)(nil)

func (h *Handle) URL() string {
	return fmt.Sprintf("http://%s", h.listener.Addr().String())
}

func (h *Handle) Close() error {
	return h.listener.Close()
}
