package html

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/btmxh/folio/internal/content"
	"github.com/btmxh/folio/internal/media"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobustImage(t *testing.T) {
	t.Run("plain url", func(t *testing.T) {
		out := string(RobustImage("https://example.com/a.png?x=1&y=2", `Me "smiling"`, "photo"))
		assert.True(t, strings.HasPrefix(out, "<img"))
		assert.Contains(t, out, `src="https://example.com/a.png?x=1&amp;y=2"`)
		assert.Contains(t, out, `alt="Me &#34;smiling&#34;"`)
		assert.Contains(t, out, `class="photo"`)
		assert.Contains(t, out, `data-index="0"`)
		assert.Contains(t, out, `onerror="folioImageFailed(this)"`)
	})

	t.Run("drive url carries every candidate", func(t *testing.T) {
		out := string(RobustImage("https://drive.google.com/file/d/ABC123/view", "", ""))
		assert.Contains(t, out, `src="https://drive.google.com/uc?export=view&amp;id=ABC123"`)
		assert.Contains(t, out, "thumbnail?id=ABC123")
		assert.Contains(t, out, "lh3.googleusercontent.com/d/ABC123=w1000")
		assert.NotContains(t, out, "class=")
	})

	t.Run("empty url renders nothing", func(t *testing.T) {
		assert.Empty(t, RobustImage("  ", "alt", ""))
	})
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "March 2024", FormatDate(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)))
	assert.Empty(t, FormatDate(time.Time{}))
}

func TestDict(t *testing.T) {
	m, err := dict("a", 1, "b", "two")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "two"}, m)

	_, err = dict("a")
	assert.Error(t, err)
	_, err = dict(1, 2)
	assert.Error(t, err)
}

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func samplePortfolio() *content.Portfolio {
	published := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	return &content.Portfolio{
		Profile:    &content.Profile{Name: "Ada", Headline: "Engineer", PhotoURL: "https://drive.google.com/open?id=XYZ999"},
		Highlights: []content.Highlight{{Text: "Open source", Icon: "*"}},
		Sections: []content.Section{
			{Type: "projects", Title: "Projects", Layout: content.LayoutHybrid},
			{Type: "talks", Title: "Talks", Layout: content.LayoutTab},
			{Type: "publications", Title: "Publications", Layout: content.LayoutInline},
		},
		Entries: []content.Entry{
			{
				SectionId: "projects",
				Title:     "Folio",
				Content:   "A portfolio.",
				Tags:      []string{"go"},
				Links:     []content.EntryLink{{URL: "https://github.com/btmxh/folio", Text: "Source"}},
				MediaLinks: []media.Link{
					{URL: "https://youtu.be/dQw4w9WgXcQ", Kind: media.KindVideo, Title: "Demo"},
					{URL: "https://example.com/deck.pptx", Kind: media.KindPPTX},
					{URL: "https://example.com/clip.mp4", Kind: media.KindVideo},
					{URL: "https://example.com/shot.png", Kind: media.KindImage},
				},
			},
			{
				SectionId:  "talks",
				Title:      "Talk",
				MediaLinks: []media.Link{{URL: "https://youtu.be/dQw4w9WgXcQ", Kind: media.KindVideo}},
			},
			{
				SectionId:       "publications",
				Title:           "Paper",
				Publisher:       "Journal",
				PublicationDate: &published,
				PublicationType: "journal",
				CoAuthors:       []string{"Grace", "Alan"},
			},
		},
		Featured: []content.Featured{{Text: "New post", ButtonText: "Read", ButtonURL: "https://example.com"}},
		Socials:  []content.Social{{Platform: "GitHub", URL: "https://github.com/btmxh"}},
	}
}

func TestHomeTemplate(t *testing.T) {
	tmpl := GetTemplate("home", "templates/home.tmpl", "templates/media.tmpl")
	c, w := testContext("/?tab=journal")

	RenderGin(tmpl, c, "layout", gin.H{"Portfolio": samplePortfolio()})
	require.Empty(t, c.Errors)

	body := w.Body.String()
	assert.Contains(t, body, "<title>Ada</title>")
	assert.Contains(t, body, "https://drive.google.com/uc?export=view&amp;id=XYZ999")
	assert.Contains(t, body, "https://www.youtube.com/embed/dQw4w9WgXcQ")
	assert.Contains(t, body, "PowerPoint Presentation")
	assert.Contains(t, body, `<video class="media-video" src="https://example.com/clip.mp4"`)
	assert.Contains(t, body, "https://i3.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg")
	assert.Contains(t, body, "Journal, June 2023")
	assert.Contains(t, body, "With Grace, Alan")
	assert.Contains(t, body, "Journal")
}

func TestModalTemplate(t *testing.T) {
	tmpl := parse(t, "templates/modal.tmpl", "templates/media.tmpl")
	c, w := testContext("/media/view")

	resolved := media.ResolveEmbed("https://example.com/deck.pptx", media.KindPPT, media.EmbedOptions{})
	RenderGin(tmpl, c, "modal", gin.H{"Resolved": resolved, "Title": "Deck"})
	require.Empty(t, c.Errors)
	assert.Contains(t, w.Body.String(), `href="https://example.com/deck.pptx"`)
	assert.Contains(t, w.Body.String(), "Open in New Tab")
}

func TestAdminTemplates(t *testing.T) {
	portfolio := samplePortfolio()

	t.Run("dashboard", func(t *testing.T) {
		tmpl := parse(t, "templates/admin/dashboard.tmpl", "templates/admin/common.tmpl")
		c, w := testContext("/admin")
		RenderGin(tmpl, c, "layout", gin.H{"Portfolio": portfolio})
		require.Empty(t, c.Errors)
		assert.Contains(t, w.Body.String(), "Entries (1)")
	})

	t.Run("entry form", func(t *testing.T) {
		tmpl := parse(t, "templates/admin/form.tmpl")
		c, w := testContext("/admin/entries/new")
		RenderGin(tmpl, c, "layout", gin.H{
			"Collection": "entries",
			"IsNew":      true,
			"Item":       portfolio.Entries[0],
			"Action":     "/admin/entries",
			"Sections":   portfolio.Sections,
			"Fields":     gin.H{"Tags": "go", "Images": "", "Links": "", "MediaLinks": "", "PublicationDate": "", "CoAuthors": ""},
		})
		require.Empty(t, c.Errors)
		assert.Contains(t, w.Body.String(), `<option value="projects" selected>`)
	})
}

func parse(t *testing.T, paths ...string) *template.Template {
	t.Helper()
	return GetTemplate("test", paths...)
}
