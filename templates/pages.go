package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"nogahub/services"
)

// ProjectSummary is the row shape the project pages render. Handlers map
// records into it so the views stay free of storage types.
type ProjectSummary struct {
	ID          string
	ProjectName string
	ClientName  string
	GrandTotal  float64
	Calculated  bool
	Updated     string
}

// DashboardStats feeds the header cards on the home page.
type DashboardStats struct {
	TotalProjects      int
	CalculatedProjects int
	TotalValueJOD      float64
}

// Dashboard renders the home page: portfolio stats and the most recent
// projects.
func Dashboard(stats DashboardStats, recent []ProjectSummary) templ.Component {
	return Layout("Dashboard", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1><div class="stat-cards">`); err != nil {
			return err
		}
		if err := statCard(w, "Projects", strconv.Itoa(stats.TotalProjects)); err != nil {
			return err
		}
		if err := statCard(w, "Calculated", strconv.Itoa(stats.CalculatedProjects)); err != nil {
			return err
		}
		if err := statCard(w, "Quoted Value", services.FormatJOD(stats.TotalValueJOD)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div><h2>Recent Projects</h2>`); err != nil {
			return err
		}
		return projectTable(ctx, w, recent)
	}))
}

func statCard(w io.Writer, label, value string) error {
	if _, err := io.WriteString(w, `<div class="stat-card"><span class="stat-label">`); err != nil {
		return err
	}
	if err := writeEscaped(w, label); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `</span><span class="stat-value">`); err != nil {
		return err
	}
	if err := writeEscaped(w, value); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</span></div>`)
	return err
}

// ProjectList renders the full project listing page.
func ProjectList(projects []ProjectSummary) templ.Component {
	return Layout("Projects", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Projects</h1>`); err != nil {
			return err
		}
		return projectTable(ctx, w, projects)
	}))
}

func projectTable(_ context.Context, w io.Writer, projects []ProjectSummary) error {
	if len(projects) == 0 {
		_, err := io.WriteString(w, `<p class="empty">No projects yet.</p>`)
		return err
	}
	if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Project</th><th>Client</th><th>Grand Total</th><th>Status</th><th>Updated</th></tr></thead><tbody>`); err != nil {
		return err
	}
	for _, p := range projects {
		if _, err := io.WriteString(w, `<tr><td><a href="/projects/`); err != nil {
			return err
		}
		if err := writeEscaped(w, p.ID); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `">`); err != nil {
			return err
		}
		if err := writeEscaped(w, p.ProjectName); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</a></td><td>`); err != nil {
			return err
		}
		if err := writeEscaped(w, p.ClientName); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</td><td class="num">`); err != nil {
			return err
		}
		total := ""
		status := "Draft"
		if p.Calculated {
			total = services.FormatJOD(p.GrandTotal)
			status = "Calculated"
		}
		if err := writeEscaped(w, total); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</td><td>`); err != nil {
			return err
		}
		if err := writeEscaped(w, status); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</td><td>`); err != nil {
			return err
		}
		if err := writeEscaped(w, p.Updated); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</td></tr>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

// EquipmentList renders the catalog page with pricing columns.
func EquipmentList(items []services.EquipmentItem) templ.Component {
	return Layout("Equipment", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Equipment Catalog</h1>`); err != nil {
			return err
		}
		if len(items) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No equipment in the catalog.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr><th>Code</th><th>Name</th><th>Dealer</th><th>Client</th><th>MSRP</th><th>Weight (kg)</th><th>Category</th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, item := range items {
			cells := []string{
				item.Code,
				item.Name,
				services.FormatUSD(item.DealerUSD),
				services.FormatUSD(item.ClientUSD),
				services.FormatUSD(item.MSRPUSD),
				strconv.FormatFloat(item.Weight, 'f', -1, 64),
				item.Category,
			}
			if _, err := io.WriteString(w, `<tr>`); err != nil {
				return err
			}
			for _, c := range cells {
				if _, err := io.WriteString(w, `<td>`); err != nil {
					return err
				}
				if err := writeEscaped(w, c); err != nil {
					return err
				}
				if _, err := io.WriteString(w, `</td>`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, `</tr>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</tbody></table>`)
		return err
	}))
}
