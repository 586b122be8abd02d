// Package server hosts the portfolio page: it renders the single document
// from the content, theme and section registry, serves assets, and handles
// contact form posts from HTMX.
package server

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ajithkoli/portfolio/internal/contact"
	"github.com/ajithkoli/portfolio/internal/content"
	"github.com/ajithkoli/portfolio/internal/navbar"
	"github.com/ajithkoli/portfolio/internal/scroll"
	"github.com/ajithkoli/portfolio/internal/sections"
	"github.com/ajithkoli/portfolio/internal/theme"
	"github.com/ajithkoli/portfolio/internal/viewport"
)

// Config is where the server finds its files.
type Config struct {
	TemplatesGlob string
	StaticDir     string
	ImagesDir     string
	ResumePath    string
}

type Server struct {
	cfg      Config
	sender   contact.Sender
	logger   *slog.Logger
	site     content.Site
	theme    theme.Theme
	registry *sections.Registry
	metrics  *Metrics

	engine   *gin.Engine
	css      []byte
	about    template.HTML
	heroText template.HTML
}

// Option configures a Server.
type Option func(*Server)

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

func WithSite(site content.Site) Option {
	return func(s *Server) { s.site = site }
}

func WithTheme(t theme.Theme) Option {
	return func(s *Server) { s.theme = t }
}

func WithRegistry(r *sections.Registry) Option {
	return func(s *Server) { s.registry = r }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// New builds the server and its gin engine. Templates are parsed here, so a
// bad template fails startup rather than the first request.
func New(cfg Config, sender contact.Sender, opts ...Option) (*Server, error) {
	if sender == nil {
		return nil, errors.New("server: sender is required")
	}
	s := &Server{
		cfg:      cfg,
		sender:   sender,
		logger:   slog.Default(),
		site:     content.Default(),
		theme:    theme.Default(),
		registry: sections.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	var err error
	if s.css, err = s.theme.CSS(); err != nil {
		return nil, err
	}
	if s.about, err = content.Markdown(content.AboutMe); err != nil {
		return nil, err
	}
	if s.heroText, err = content.Markdown(content.HeroIntro); err != nil {
		return nil, err
	}

	s.engine = s.routes()
	return s, nil
}

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), s.metrics.pageViews(s.site.Profile.ResumePath))

	r.SetFuncMap(template.FuncMap{
		"join": strings.Join,
	})
	r.LoadHTMLGlob(s.cfg.TemplatesGlob)

	if s.cfg.StaticDir != "" {
		r.Static("/static", s.cfg.StaticDir)
	}
	if s.cfg.ImagesDir != "" {
		r.Static("/images", s.cfg.ImagesDir)
	}
	if s.cfg.ResumePath != "" {
		r.StaticFile(s.site.Profile.ResumePath, s.cfg.ResumePath)
	}

	r.GET("/", s.handleIndex)
	r.GET("/theme.css", s.handleThemeCSS)
	r.GET("/api/sections", s.handleSections)
	r.GET("/projects/:slug", s.handleProject)
	r.POST("/contact", s.handleContact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	return r
}

// pageConfig is injected into the page for site.js, so the browser uses
// the same constants as the Go tracker and observers.
type pageConfig struct {
	Sections          []sections.Descriptor `json:"sections"`
	Threshold         float64               `json:"threshold"`
	DetectionLine     float64               `json:"detectionLine"`
	ViewportThreshold float64               `json:"viewportThreshold"`
	Breakpoint        int                   `json:"breakpoint"`
	ToastMs           int                   `json:"toastMs"`
}

func (s *Server) pageConfig() pageConfig {
	return pageConfig{
		Sections:          s.registry.All(),
		Threshold:         scroll.DefaultThreshold,
		DetectionLine:     scroll.DefaultDetectionLine,
		ViewportThreshold: viewport.DefaultConfig.Threshold,
		Breakpoint:        s.theme.Breakpoints.MD,
		ToastMs:           s.theme.Motion.ToastMs,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	nav := navbar.Static(s.registry, scroll.State{},
		navbar.WithBrand(s.site.Profile.Name),
		navbar.WithResume(s.site.Profile.ResumePath),
		navbar.WithBreakpoint(s.theme.Breakpoints.MD),
	)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"site":          s.site,
		"nav":           nav,
		"heroIntro":     s.heroText,
		"aboutHeadline": content.AboutHeadline,
		"aboutContent":  s.about,
		"contactBlurb":  content.ContactBlurb,
		"contactForm":   contactView{},
		"pageConfig":    s.pageConfig(),
	})
}

func (s *Server) handleThemeCSS(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", s.css)
}

func (s *Server) handleSections(c *gin.Context) {
	c.JSON(http.StatusOK, s.pageConfig())
}

// handleProject returns the project detail dialog fragment.
func (s *Server) handleProject(c *gin.Context) {
	p, ok := s.site.Project(c.Param("slug"))
	if !ok {
		c.String(http.StatusNotFound, "project not found")
		return
	}
	c.HTML(http.StatusOK, "project-dialog.html", gin.H{"project": p})
}
