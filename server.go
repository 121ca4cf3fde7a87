package main

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/melissaiman/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// sections are the fragments served for HTMX swaps, in page order.
var sections = []string{"education", "languages", "experience", "skills", "projects", "certifications"}

// revealClasses mark the page sections that animate in on scroll.
var revealClasses = []string{"scroll-fade", "scroll-slide-left", "scroll-slide-right", "scroll-scale", "scroll-bounce"}

func normalizeBasePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func templateFuncs(basePath string) template.FuncMap {
	return template.FuncMap{
		"asset": func(p string) string {
			return basePath + p
		},
		"section": func(name string) string {
			return basePath + sectionPath(name)
		},
		"width": func(level int) template.CSS {
			return template.CSS(fmt.Sprintf("width: %d%%", level))
		},
		"delay": func(i int) template.CSS {
			return template.CSS(fmt.Sprintf("transition-delay: %dms", i*100))
		},
	}
}

func loadTemplates(basePath string) (*template.Template, error) {
	t, err := template.New("").Funcs(templateFuncs(basePath)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return t, nil
}

func pageData(site content.Portfolio, basePath string) gin.H {
	return gin.H{
		"site":     site,
		"basePath": basePath,
		"reveal":   strings.Join(revealClasses, ", "),
	}
}

func newRouter(site content.Portfolio, basePath string) (*gin.Engine, error) {
	basePath = normalizeBasePath(basePath)
	tmpl, err := loadTemplates(basePath)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	r := gin.Default()
	r.SetHTMLTemplate(tmpl)

	g := r.Group(basePath)
	g.StaticFS("/static", http.FS(static))

	// Home page route
	g.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", pageData(site, basePath))
	})

	// HTMX section fragments
	g.GET("/sections/:name", func(c *gin.Context) {
		name := strings.TrimSuffix(c.Param("name"), ".html")
		if !isSection(name) {
			c.String(http.StatusNotFound, "unknown section %q", name)
			return
		}
		c.HTML(http.StatusOK, "section-"+name+".html", pageData(site, basePath))
	})

	g.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if basePath != "" {
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, basePath+"/")
		})
	}

	r.NoRoute(func(c *gin.Context) {
		log.Printf("Not found: %s", c.Request.URL.Path)
		c.HTML(http.StatusNotFound, "404.html", pageData(site, basePath))
	})
	return r, nil
}

// sectionPath is where a section fragment is served, relative to the base
// path. The .html suffix lets the exported files answer the same URLs.
func sectionPath(name string) string {
	return "/sections/" + name + ".html"
}

func isSection(name string) bool {
	for _, s := range sections {
		if s == name {
			return true
		}
	}
	return false
}
