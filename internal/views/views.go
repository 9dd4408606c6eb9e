package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// NewEngine returns the Fiber view engine for the embedded page templates.
func NewEngine() (*html.Engine, error) {
	root, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, err
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	return engine, nil
}
