// Package server serves the parameter form and the rendered chart over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/newton-rings/app"
	"github.com/AnkushinDaniil/newton-rings/entity/format"
	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/form"
	"github.com/AnkushinDaniil/newton-rings/interference"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Addr   string
	Locale locale.Locale
}

func New(addr string, l locale.Locale) *Server {
	return &Server{Addr: addr, Locale: l}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleForm)
	mux.HandleFunc("/chart", s.handleChart)
	mux.HandleFunc("/series", s.handleSeries)
	return logRequests(mux)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	log.WithField("addr", ln.Addr().String()).Info("Server started")

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("Server stopped")
	return nil
}

func (s *Server) locale(r *http.Request) locale.Locale {
	if l, err := locale.UnmarshalText(r.URL.Query().Get("lang")); err == nil {
		return l
	}
	return s.Locale
}

type page struct {
	Lang      string
	Labels    locale.Labels
	Fields    []field
	Last      []field
	Warning   string
	ChartURL  string
	Visible   bool
	DarkRings int
	Contrast  string
}

// handleForm replays the last accepted parameters, carried in hidden
// last_* fields, and then the submitted ones. A refused submission keeps
// the previous chart on the page.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	l := s.locale(r)
	f := form.New("newton-rings")

	if last, ok := parseParams(r.Form, lastPrefix); ok {
		_, _ = f.Submit(last)
	}
	submitted, ok := parseParams(r.Form, "")

	pg := page{
		Lang:   l.String(),
		Labels: l.Labels(),
		Fields: formFields(submitted, l),
	}
	if ok {
		if _, err := f.Submit(submitted); errors.Is(err, parameters.ErrInvalidParameters) {
			pg.Warning = pg.Labels.Warning
		}
	}

	if curve := f.Curve(); curve != nil {
		q := url.Values{}
		q.Set("lang", l.String())
		encodeParams(q, "", curve.Params())
		pg.ChartURL = "/chart?" + q.Encode()
		pg.Visible = true
		pg.Last = formFields(curve.Params(), l)
		pg.DarkRings = len(curve.Summary().DarkRingRadii)
		pg.Contrast = fmt.Sprintf("%.4f", curve.Summary().Visibility)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, pg); err != nil {
		log.WithError(err).Error("Failed to render form")
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, format.HTML, "text/html; charset=utf-8")
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, format.JSON, "application/json")
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, f format.Format, contentType string) {
	l := s.locale(r)
	p, _ := parseParams(r.URL.Query(), "")

	curve, err := interference.NewCurve("newton-rings", p)
	if err != nil {
		http.Error(w, l.Labels().Warning, http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if err := app.Render(w, curve, f, l); err != nil {
		log.WithError(err).Error("Failed to render curve")
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
			"time":   time.Since(startTime),
		}).Debug("Request served")
	})
}

var formTemplate = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<title>{{.Labels.Heading}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
.input { margin: 0.5em 0; }
.input input { margin-left: 0.5em; }
.popup { border: 1px solid #cc8800; background: #fff4e0; padding: 0.5em 1em; margin: 1em 0; }
iframe { border: none; width: 100%; height: 640px; }
</style>
</head>
<body>
<h1>{{.Labels.Heading}}</h1>
<form method="get" action="/">
<input type="hidden" name="lang" value="{{.Lang}}">
{{range .Fields}}<div class="input">{{.Label}}:<input type="number" name="{{.Name}}" step="{{.Step}}" value="{{.Value}}"></div>
{{end}}{{range .Last}}<input type="hidden" name="last_{{.Name}}" value="{{.Value}}">
{{end}}<div class="input"><button type="submit">{{.Labels.Plot}}</button></div>
</form>
{{if .Warning}}<div class="popup"><h2>{{.Labels.Caution}}</h2><p>{{.Warning}}</p></div>
{{end}}{{if .Visible}}<p>V = {{.Contrast}}, N = {{.DarkRings}}</p>
<iframe src="{{.ChartURL}}"></iframe>
{{end}}</body>
</html>
`))
