// Package stub is a fake backend for local development. It serves the same
// routes and payload shapes as the real API over an in-memory store, so the
// CLI and the view-model tests can run without network access.
package stub

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServerConfig holds the listen address of the fake backend.
type ServerConfig struct {
	Host string
	Port int
}

// Server serves the fake API.
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	router     *gin.Engine
	store      *Store
	logger     *zap.Logger
}

// NewServer wires the routes over a fresh seeded store.
func NewServer(config ServerConfig, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	s := &Server{
		config: config,
		router: router,
		store:  NewStore(),
		logger: logger,
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Recovery())
	s.router.Use(s.loggingMiddleware())
}

func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	api.POST("/auth/login", s.login)

	authed := api.Group("")
	authed.Use(s.authMiddleware())
	{
		authed.POST("/reservas", s.createReservation)
		authed.GET("/reservas/dashboard", s.dashboard)
		authed.GET("/reservas/minhas-solicitacoes", s.myRequests)
		authed.GET("/reservas/exportar-minhas-solicitacoes", s.exportMyRequests)
		authed.GET("/reservas/minhas-pendencias", s.myPendings)
		authed.GET("/reservas/:id", s.getReservation)
		authed.POST("/reservas/:id/decisao", s.decide)
		authed.GET("/reservas/:id/recibos", s.listReceipts)
		authed.POST("/reservas/:id/recibos", s.uploadReceipt)
		authed.DELETE("/reservas/:id/recibos/:receiptId", s.deleteReceipt)

		authed.GET("/cadastros/colaboradores", s.colaboradores)
		authed.GET("/cadastros/centro-de-custo", s.centrosDeCusto)
		authed.GET("/cadastros/cidades", s.cidades)

		authed.GET("/arquivos/listar", s.listFiles)
		authed.GET("/arquivos/download/:id", s.downloadFile)
		authed.POST("/arquivos/upload", s.uploadFile)
		authed.DELETE("/arquivos/:id", s.deleteFile)

		authed.GET("/extrato", s.statement)
		authed.POST("/extrato/operacoes", s.createOperation)
		authed.DELETE("/extrato/operacao/:id", s.deleteOperation)
	}
}

// authMiddleware resolves the bearer token into a user, rejecting anything
// without a live session the way the real API does.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			fail(c, http.StatusUnauthorized, "Usuário não autenticado")
			c.Abort()
			return
		}

		s.store.mu.Lock()
		u := s.store.userForToken(token)
		s.store.mu.Unlock()
		if u == nil {
			fail(c, http.StatusUnauthorized, "Sessão expirada")
			c.Abort()
			return
		}

		c.Set("user", u)
		c.Next()
	}
}

func currentUser(c *gin.Context) *user {
	u, _ := c.MustGet("user").(*user)
	return u
}

// fail writes the API's error envelope.
func fail(c *gin.Context, status int, messages ...string) {
	c.JSON(status, gin.H{"erros": messages})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("Starting stub API server", zap.String("address", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		s.logger.Error("Stub server error", zap.Error(err))
		return err
	}
}

// Stop gracefully stops the server.
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine { return s.router }
