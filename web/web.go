// Package web implements the HTTP server: routing, sessions, templates,
// and the scheduled catalog sync.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"dragondex/config"
	"dragondex/logger"
	"dragondex/util/common"
	"dragondex/util/random"
	"dragondex/web/controller"
	"dragondex/web/job"
	"dragondex/web/middleware"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

//go:embed html/*
var htmlFS embed.FS

const sessionMaxAge = 3600 // seconds

// Server is the web server: controllers, session store, and cron.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	api      *controller.CharacterAPIController
	view     *controller.ViewController
	favorite *controller.FavoriteController
	auth     *controller.AuthController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(middleware.RequestID())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	secret := config.GetSessionSecret()
	if secret == "" {
		// Per-boot secret: existing sessions do not survive a restart.
		secret = random.Seq(32)
		logger.Debug("no session secret configured, generated one for this run")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(config.GetName(), store))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	g := engine.Group("/")
	s.api = controller.NewCharacterAPIController(g)
	s.auth = controller.NewAuthController(g)
	s.view = controller.NewViewController(g)
	s.favorite = controller.NewFavoriteController(g)

	engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/vista/personajesweb")
	})

	engine.NoRoute(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusNotFound)
	})

	return engine, nil
}

func (s *Server) startTask() {
	if spec := config.GetSyncCron(); spec != "" {
		if _, err := s.cron.AddJob(spec, job.NewCatalogSyncJob()); err != nil {
			logger.Warningf("invalid sync cron spec %q: %v", spec, err)
		} else {
			logger.Infof("catalog sync scheduled at %q", spec)
		}
	}
}

// Start binds the listener and serves until Stop.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
