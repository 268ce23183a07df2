package resources_test

import (
	"bytes"
	"html/template"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dalemusser/homestay/internal/app/resources"
	"github.com/dalemusser/homestay/internal/app/system/viewdata"
	"github.com/dalemusser/homestay/internal/domain/models"
)

// parseWithContent parses the shared templates plus a "page" that wraps
// content in the layout the way a feature page does.
func parseWithContent(t *testing.T, content string) *template.Template {
	t.Helper()
	tmpl, err := template.New("shared").ParseFS(resources.FS, "templates/*.gohtml")
	if err != nil {
		t.Fatalf("parse shared templates: %v", err)
	}
	if _, err := tmpl.New("page").Parse(`{{template "layout_open" .}}` + content + `{{template "layout_close" .}}`); err != nil {
		t.Fatalf("parse content: %v", err)
	}
	return tmpl
}

func render(t *testing.T, tmpl *template.Template, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		t.Fatalf("execute %s: %v", name, err)
	}
	return buf.String()
}

func TestLayout_MetadataDefaults(t *testing.T) {
	viewdata.Reset()
	tmpl := parseWithContent(t, `<p>hello</p>`)
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/", nil), "", "")

	out := render(t, tmpl, "page", vm)

	if !strings.Contains(out, "<title>"+models.DefaultSiteName+"</title>") {
		t.Errorf("default title missing:\n%s", out)
	}
	if !strings.Contains(out, `<meta name="description" content="`+template.HTMLEscapeString(models.DefaultSiteDescription)+`">`) {
		t.Errorf("default description missing:\n%s", out)
	}
}

func TestLayout_MetadataOverrides(t *testing.T) {
	viewdata.Reset()
	tmpl := parseWithContent(t, `<p>posts</p>`)
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/blog", nil), "Blog", "Stories from our host families")

	out := render(t, tmpl, "page", vm)

	if !strings.Contains(out, "<title>Blog</title>") {
		t.Errorf("title override missing")
	}
	if !strings.Contains(out, `content="Stories from our host families"`) {
		t.Errorf("description override missing")
	}
}

func TestLayout_ExactlyOneHeaderAndFooter(t *testing.T) {
	viewdata.Reset()
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/", nil), "", "")

	for _, content := range []string{
		``,
		`<p>short</p>`,
		strings.Repeat(`<p>a long paragraph of content</p>`, 500),
	} {
		out := render(t, parseWithContent(t, content), "page", vm)

		if n := strings.Count(out, "<header"); n != 1 {
			t.Errorf("header count: got %d, want 1 (content length %d)", n, len(content))
		}
		if n := strings.Count(out, "<footer"); n != 1 {
			t.Errorf("footer count: got %d, want 1 (content length %d)", n, len(content))
		}
		if n := strings.Count(out, "<main"); n != 1 {
			t.Errorf("main count: got %d, want 1", n)
		}

		header := strings.Index(out, "<header")
		main := strings.Index(out, "<main")
		footer := strings.Index(out, "<footer")
		if !(header < main && main < footer) {
			t.Errorf("regions out of order: header=%d main=%d footer=%d", header, main, footer)
		}
	}
}

func TestLayout_CanonicalURL(t *testing.T) {
	viewdata.Reset()
	defer viewdata.Reset()
	tmpl := parseWithContent(t, ``)

	out := render(t, tmpl, "page", viewdata.NewBaseVM(httptest.NewRequest("GET", "/about", nil), "", ""))
	if strings.Contains(out, `rel="canonical"`) {
		t.Error("canonical link rendered without a base URL")
	}

	viewdata.Configure(viewdata.Defaults{BaseURL: "https://homestay.example.nz"})
	out = render(t, tmpl, "page", viewdata.NewBaseVM(httptest.NewRequest("GET", "/about", nil), "", ""))
	if !strings.Contains(out, `<link rel="canonical" href="https://homestay.example.nz/about">`) {
		t.Errorf("canonical link missing:\n%s", out)
	}
	if !strings.Contains(out, `<meta property="og:url" content="https://homestay.example.nz/about">`) {
		t.Errorf("og:url missing:\n%s", out)
	}
}

func TestLayout_StickyFooterStyles(t *testing.T) {
	css, err := os.ReadFile(filepath.Join("..", "..", "..", "public", "css", "site.css"))
	if err != nil {
		t.Fatalf("read site.css: %v", err)
	}
	s := string(css)

	// body is a full-height flex column and main absorbs the spare height
	for _, want := range []string{"min-height: 100vh", "flex-direction: column", "flex: 1 0 auto", "flex-shrink: 0"} {
		if !strings.Contains(s, want) {
			t.Errorf("site.css missing %q", want)
		}
	}
}

func TestLayout_Flash(t *testing.T) {
	tmpl := parseWithContent(t, ``)
	vm := viewdata.NewBaseVM(httptest.NewRequest("GET", "/hosting", nil), "", "")
	vm.Flash = "Thanks!"

	out := render(t, tmpl, "page", vm)
	if !strings.Contains(out, `<p class="flash" role="status">Thanks!</p>`) {
		t.Error("flash message not rendered")
	}
}

func TestLocationBody_Order(t *testing.T) {
	viewdata.Reset()
	tmpl := parseWithContent(t, `{{template "location_body" .}}`)
	vm := viewdata.NewLocationVM(httptest.NewRequest("GET", "/locations/napier", nil), viewdata.LocationPage{
		Title:       "Napier",
		Image:       "/static/img/locations/napier.jpg",
		Description: template.HTML("<p>Art deco by the sea.</p>"),
		MapURL:      "https://www.google.com/maps/embed/v1/place?q=Napier",
		Extra:       template.HTML(`<p class="extra">Schools nearby</p>`),
	})

	out := render(t, tmpl, "page", vm)

	if !strings.Contains(out, "<title>Napier | "+models.DefaultSiteName+"</title>") {
		t.Errorf("derived title missing")
	}

	heading := strings.Index(out, `<h1 class="location-heading">Napier</h1>`)
	img := strings.Index(out, `<img src="/static/img/locations/napier.jpg"`)
	desc := strings.Index(out, "Art deco by the sea.")
	iframe := strings.Index(out, `<iframe src="https://www.google.com/maps/embed/v1/place?q=Napier"`)
	extra := strings.Index(out, `<p class="extra">Schools nearby</p>`)

	for name, idx := range map[string]int{"heading": heading, "img": img, "desc": desc, "iframe": iframe, "extra": extra} {
		if idx < 0 {
			t.Fatalf("%s not rendered:\n%s", name, out)
		}
	}
	if !(heading < img && img < desc && desc < iframe && iframe < extra) {
		t.Errorf("location regions out of order: heading=%d img=%d desc=%d iframe=%d extra=%d",
			heading, img, desc, iframe, extra)
	}
}

func TestLocationBody_LazyMedia(t *testing.T) {
	tmpl := parseWithContent(t, `{{template "location_body" .}}`)
	vm := viewdata.NewLocationVM(httptest.NewRequest("GET", "/locations/nelson", nil), viewdata.LocationPage{
		Title:  "Nelson",
		Image:  "/static/img/locations/nelson.jpg",
		MapURL: "https://maps.example.com/nelson",
	})

	out := render(t, tmpl, "page", vm)

	if !strings.Contains(out, `width="640" height="360" loading="lazy"`) {
		t.Error("image is not a lazy 640x360 image")
	}
	if !strings.Contains(out, `aspect-ratio: 16 / 9;`) {
		t.Error("map region is not 16:9")
	}
	if strings.Count(out, `loading="lazy"`) != 2 {
		t.Errorf("lazy elements: got %d, want 2", strings.Count(out, `loading="lazy"`))
	}
	if strings.Contains(out, "location-extra") {
		t.Error("extra region rendered without extra content")
	}
}
