package views

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/harshilpatel/folio/content"
	"github.com/harshilpatel/folio/viewstate"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// htmlWriter stops writing after the first error so components can render
// straight-line markup and check once at the end.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

func (w *htmlWriter) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// printf writes format with args escaped for HTML text and attribute values.
func (w *htmlWriter) printf(format string, args ...any) {
	for i, a := range args {
		switch v := a.(type) {
		case string:
			args[i] = templ.EscapeString(v)
		case templ.SafeURL:
			args[i] = templ.EscapeString(string(v))
		}
	}
	w.raw(fmt.Sprintf(format, args...))
}

func (w *htmlWriter) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *htmlWriter) render(c templ.Component) {
	if w.err != nil {
		return
	}
	w.err = c.Render(w.ctx, w.w)
}

// component adapts a writer func into a templ.Component.
func component(fn func(w *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := newWriter(ctx, out)
		fn(w)
		return w.err
	})
}

func classes(base string, extra ...string) string {
	parts := []string{base}
	for _, e := range extra {
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " ")
}

func when(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}

// TabPath is the htmx endpoint that selects tab.
func TabPath(tab viewstate.Tab, career content.CareerPath) string {
	return "/view/tab/" + string(tab) + "/?career=" + url.QueryEscape(string(career))
}

// ViewPath is a view-state endpoint such as "menu" or "portfolio".
func ViewPath(action string, career content.CareerPath) string {
	return "/view/" + action + "/?career=" + url.QueryEscape(string(career))
}

// SharePath is the redirect endpoint for sharing the career page on platform.
func SharePath(platform string, career content.CareerPath) string {
	return "/share/" + url.PathEscape(platform) + "?career=" + url.QueryEscape(string(career))
}

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Fragments renders components back to back, for htmx responses that carry
// out-of-band swaps.
func Fragments(cs ...templ.Component) templ.Component {
	return component(func(w *htmlWriter) {
		for _, c := range cs {
			w.render(c)
		}
	})
}
