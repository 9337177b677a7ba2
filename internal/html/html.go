package html

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"net"
	"strings"
	"time"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/media"
	"github.com/btmxh/folio/internal/stores"
	"github.com/gin-gonic/gin"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// StaticFS serves the scripts and styles under /static.
func StaticFS() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}

	return sub
}

func StringAsHTML(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func CombineArgs(args ...gin.H) gin.H {
	all := gin.H{}
	for _, arg := range args {
		maps.Copy(all, arg)
	}
	return all
}

func RenderGin(tmpl *template.Template, c *gin.Context, block string, arg gin.H) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, block, CombineArgs(gin.H{"Context": c}, arg)); err != nil {
		c.Error(err).SetType(gin.ErrorTypeRender)
		return
	}
}

// ParentHost is the host the page is served from, without port. Twitch
// embeds must name it.
func ParentHost(c *gin.Context) string {
	host := c.Request.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	return host
}

func DefaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"HasUsername": func(c *gin.Context) bool {
			return stores.IsLoggedIn(c)
		},
		"GetUsername": func(c *gin.Context) string {
			return stores.GetUsername(c)
		},
		"FormatTimestampUTC": func(t time.Time) template.HTML {
			defaultFormat := t.UTC().Format("02/01/2006, 15:04:05 UTC")
			return template.HTML("<span class=\"timestamp\" data-value=\"" + t.UTC().Format(time.RFC3339) + "\">" + defaultFormat + "</span>")
		},
		"FormatDate": FormatDate,
		"HumanIndex": func(i int) int {
			return i + 1
		},
		"Get": func(c *gin.Context, name string) string {
			if c.Request.Method == "POST" {
				return c.PostForm(name)
			} else {
				return c.Query(name)
			}
		},
		"Join": strings.Join,
		"dict": dict,
		"Excerpt": func(s string) string {
			return content.Excerpt(s, content.DefaultExcerptLength)
		},
		"ResolveMedia": func(c *gin.Context, link media.Link) media.Resolved {
			return media.Resolve(link, media.EmbedOptions{ParentHost: ParentHost(c)})
		},
		"RobustImage":        RobustImage,
		"Thumbnail":          media.Thumbnail,
		"PublicationTabs":    content.PublicationTabs,
		"FilterPublications": content.FilterByPublicationType,
		"MediaKinds": func() []media.Kind {
			return media.Kinds
		},
		"Layouts": func() []content.Layout {
			return content.Layouts
		},
	}
}

// dict builds a map from alternating keys and values, for passing more
// than one value to a nested template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}

	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}

	return m, nil
}

// FormatDate renders a publication date like "March 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

func GetTemplate(name string, paths ...string) *template.Template {
	paths = append(paths, "templates/layout.tmpl")
	return template.Must(template.New(name).Funcs(DefaultFuncMap()).ParseFS(templates, paths...))
}
