package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/logger"
	"github.com/naphat/floodkit/internal/playbook"
	"github.com/naphat/floodkit/internal/valuation"
	webembed "github.com/naphat/floodkit/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"baht":              baht,
		"damageLevelLabel":  valuation.DamageLevelLabel,
		"repairStatusLabel": valuation.RepairStatusLabel,
		"percent": func(v float64) string {
			return strconv.FormatFloat(v, 'f', -1, 64) + "%"
		},
		"thaiDate": func(t time.Time) string {
			return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()+543)
		},
		"add1": func(i int) int { return i + 1 },
	}
}

// baht formats an amount with thousand separators for the report
// tables, e.g. 12500 -> "12,500".
func baht(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimSuffix(s, ".00")

	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + frac
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"report.html",
		"checklist.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		logger.Get().Error("rendering template", zap.String("template", name), zap.Error(err))
	}
}

// Server holds all dependencies for page handlers.
type Server struct {
	Store     *inventory.Store
	Tracker   *playbook.Tracker
	Templates *Templates
}
