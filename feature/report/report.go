package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"reading-tracker/feature/record"
	"reading-tracker/feature/stats"

	"go.uber.org/zap"
)

//go:embed templates/page.html.tmpl
var templates embed.FS

// Page is the view model of the generated document.
type Page struct {
	Title       string
	Year        int
	LastUpdated string
	Stats       stats.Stats
	Weeks       []stats.Week
	Months      []stats.MonthLabel
	WindowDays  int
}

// Renderer turns a reading record into the static HTML page.
type Renderer struct {
	cfg    Config
	tmpl   *template.Template
	logger *zap.Logger
}

// NewRenderer parses the embedded page template.
func NewRenderer(cfg Config, logger *zap.Logger) (*Renderer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = stats.DefaultWindowDays
	}
	if cfg.Title == "" {
		cfg.Title = "Reading Log"
	}

	tmpl, err := template.New("page.html.tmpl").Funcs(template.FuncMap{
		"cellClass": cellClass,
		"add":       func(a, b int) int { return a + b },
	}).ParseFS(templates, "templates/page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &Renderer{cfg: cfg, tmpl: tmpl, logger: logger}, nil
}

// Build computes the page model for rec as of now.
func (r *Renderer) Build(rec *record.Record, now time.Time) Page {
	if rec == nil {
		rec = record.Empty()
	}
	weeks := stats.Heatmap(rec.ReadingDays, r.cfg.WindowDays, now)
	return Page{
		Title:       r.cfg.Title,
		Year:        now.Year(),
		LastUpdated: rec.LastUpdatedDate(),
		Stats:       stats.Compute(rec.ReadingDays, now),
		Weeks:       weeks,
		Months:      stats.MonthLabels(weeks),
		WindowDays:  r.cfg.WindowDays,
	}
}

// Render writes the page for rec to w.
func (r *Renderer) Render(w io.Writer, rec *record.Record, now time.Time) error {
	if err := r.tmpl.Execute(w, r.Build(rec, now)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// RenderBytes renders the page into memory.
func (r *Renderer) RenderBytes(rec *record.Record, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, rec, now); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderFile writes the page to the configured output path and returns it.
func (r *Renderer) RenderFile(rec *record.Record, now time.Time) (string, error) {
	data, err := r.RenderBytes(rec, now)
	if err != nil {
		return "", err
	}

	path := r.cfg.Output
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write page: %w", err)
	}

	r.logger.Info("Page generated", zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}

// Output returns the configured output path.
func (r *Renderer) Output() string {
	return r.cfg.Output
}

func cellClass(c stats.Cell) string {
	switch {
	case c.IsFuture:
		return "day-cell future"
	case c.HasReading:
		return "day-cell read"
	default:
		return "day-cell"
	}
}
