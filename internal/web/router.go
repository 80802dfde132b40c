package web

import (
	"net/http"
	"time"

	"github.com/naphat/floodkit/internal/inventory"
	"github.com/naphat/floodkit/internal/model"
	"github.com/naphat/floodkit/internal/playbook"
)

// NewRouter creates the printable report router.
func NewRouter(store *inventory.Store, tracker *playbook.Tracker) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Store:     store,
		Tracker:   tracker,
		Templates: templates,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /report", s.ReportPage)
	mux.HandleFunc("GET /checklist", s.ChecklistPage)

	return mux, nil
}

// reportRow pairs an item with its resolved category name for the
// detail table.
type reportRow struct {
	Item         model.InventoryItem
	CategoryName string
}

type reportData struct {
	Title     string
	Now       time.Time
	Summaries []inventory.CategorySummary
	Totals    inventory.Totals
	Rows      []reportRow
}

// ReportPage handles GET /report: the printable damage-assessment
// document handed to insurers and district offices.
func (s *Server) ReportPage(w http.ResponseWriter, r *http.Request) {
	items := s.Store.Items()
	rows := make([]reportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, reportRow{
			Item:         item,
			CategoryName: s.Store.CategoryName(item.CategoryID),
		})
	}

	s.Templates.Render(w, "report.html", reportData{
		Title:     "บัญชีทรัพย์สินเสียหายจากน้ำท่วม",
		Now:       time.Now(),
		Summaries: s.Store.SummaryByCategory(),
		Totals:    s.Store.GrandTotal(),
		Rows:      rows,
	})
}

type checklistData struct {
	Title    string
	Now      time.Time
	Sections []playbook.Section
	Progress playbook.Progress
	Done     map[string]bool
}

// ChecklistPage handles GET /checklist: the printable recovery
// progress report.
func (s *Server) ChecklistPage(w http.ResponseWriter, r *http.Request) {
	progress := s.Tracker.Progress()

	done := make(map[string]bool)
	for _, sec := range playbook.Sections() {
		for _, sub := range sec.SubSections {
			for _, task := range sub.Tasks {
				if s.Tracker.Done(task.ID) {
					done[task.ID] = true
				}
			}
		}
	}

	s.Templates.Render(w, "checklist.html", checklistData{
		Title:    "รายงานความคืบหน้าการฟื้นฟูหลังน้ำลด",
		Now:      time.Now(),
		Sections: playbook.Sections(),
		Progress: progress,
		Done:     done,
	})
}
