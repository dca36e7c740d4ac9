package handler

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"swapi/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SystemHandler struct {
	db *gorm.DB
}

func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health pings the database.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "msj": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

const sitemapTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Star Wars API</title></head>
<body>
<div style="text-align: center;">
<h1>Star Wars API</h1>
<p>API HOST: {{.Host}}</p>
<ul style="text-align: left;">
{{- range .Routes}}
<li>{{if .Link}}<a href="{{.Path}}">{{$.Host}}{{.Path}}</a>{{else}}{{.Method}} {{.Path}}{{end}}</li>
{{- end}}
</ul>
</div>
</body>
</html>`

type sitemapRoute struct {
	Method string
	Path   string
	Link   bool
}

// Sitemap renders an HTML index of the engine's routes. GET routes without
// path parameters are rendered as links. It installs the engine's HTML
// template, so it must be the only caller of SetHTMLTemplate.
func Sitemap(engine *gin.Engine) gin.HandlerFunc {
	engine.SetHTMLTemplate(template.Must(template.New("sitemap").Parse(sitemapTemplate)))
	return func(c *gin.Context) {
		infos := engine.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})
		routes := make([]sitemapRoute, len(infos))
		for i, r := range infos {
			routes[i] = sitemapRoute{
				Method: r.Method,
				Path:   r.Path,
				Link:   r.Method == http.MethodGet && !strings.ContainsAny(r.Path, ":*"),
			}
		}
		c.HTML(http.StatusOK, "sitemap", gin.H{"Host": c.Request.Host, "Routes": routes})
	}
}
