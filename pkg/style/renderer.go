package style

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/tracksort/tracksort/pkg/pipeline"
	"github.com/tracksort/tracksort/pkg/rules"
)

// maxReportedErrors caps the error list in the final summary
const maxReportedErrors = 10

// Renderer turns run results into terminal output
type Renderer struct {
	format Format
}

// NewRenderer creates a renderer for the given output format
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: format}
}

// RenderSummary renders the final report for a completed run
func (r *Renderer) RenderSummary(stats *pipeline.Stats) string {
	var b strings.Builder

	b.WriteString(r.title("Classification Summary"))
	b.WriteString(r.categoryTable(stats))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %d\n", r.styled("Favorite", "Favorites placed:"), stats.Favorites))
	b.WriteString(fmt.Sprintf("%s %d/%d files in %s\n",
		r.styled("Success", "Processed:"), stats.Processed, stats.Total,
		stats.Elapsed.Round(time.Millisecond)))

	if stats.Failed > 0 {
		b.WriteString("\n")
		b.WriteString(r.styled("Error", fmt.Sprintf("Failed: %d", stats.Failed)))
		b.WriteString("\n")
		b.WriteString(r.renderErrors(stats))
	}

	return b.String()
}

// categoryTable renders per-category counts with percentages, sorted by
// category path for stable output
func (r *Renderer) categoryTable(stats *pipeline.Stats) string {
	categories := make([]string, 0, len(stats.Categories))
	for c := range stats.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	if r.format == FormatText {
		var b strings.Builder
		for _, c := range categories {
			count := stats.Categories[c]
			b.WriteString(fmt.Sprintf("%-50s %5d files (%5.1f%%)\n",
				c, count, percentage(count, stats.Total)))
		}
		return b.String()
	}

	data := pterm.TableData{{"Category", "Files", "Share"}}
	for _, c := range categories {
		count := stats.Categories[c]
		data = append(data, []string{
			Get("Category").Render(c),
			Get("Count").Render(fmt.Sprintf("%d", count)),
			fmt.Sprintf("%.1f%%", percentage(count, stats.Total)),
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return strings.Join(categories, "\n") + "\n"
	}
	return rendered + "\n"
}

func (r *Renderer) renderErrors(stats *pipeline.Stats) string {
	var b strings.Builder
	shown := 0
	for _, res := range stats.Results {
		if res.State != pipeline.StateFailed {
			continue
		}
		if shown == maxReportedErrors {
			b.WriteString(r.styled("Muted",
				fmt.Sprintf("  ... and %d more errors\n", stats.Failed-shown)))
			break
		}
		b.WriteString(fmt.Sprintf("  - %s: %v\n", res.Source.Name, res.Err))
		shown++
	}
	return b.String()
}

// RenderRules renders the effective rule table in evaluation order
func (r *Renderer) RenderRules(table *rules.Table) string {
	if r.format == FormatText {
		var b strings.Builder
		for _, rule := range table.Rules() {
			b.WriteString(fmt.Sprintf("%d\t%s\t%s\t%s\n",
				rule.Priority, rule.Name, rule.Folder, strings.Join(rule.Keywords, ", ")))
		}
		return b.String()
	}

	data := pterm.TableData{{"Priority", "Rule", "Folder", "Keywords"}}
	for _, rule := range table.Rules() {
		data = append(data, []string{
			fmt.Sprintf("%d", rule.Priority),
			Get("Category").Render(rule.Name),
			rule.Folder,
			strings.Join(rule.Keywords, ", "),
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Sprintf("%d rules\n", table.Len())
	}
	return rendered + "\n"
}

// RenderClassification renders a classify-preview line for one filename
func (r *Renderer) RenderClassification(filename, folder, rule string, matched bool) string {
	if !matched {
		return fmt.Sprintf("%s -> %s %s\n",
			filename, folder, r.styled("Muted", "(no rule matched)"))
	}
	return fmt.Sprintf("%s -> %s %s\n",
		filename, r.styled("Category", folder), r.styled("Muted", "("+rule+")"))
}

// title renders a section heading
func (r *Renderer) title(text string) string {
	if r.format == FormatText {
		return text + "\n"
	}
	return Get("Title").Render(text) + "\n"
}

// styled applies a named style unless plain output is in effect
func (r *Renderer) styled(name, text string) string {
	if r.format == FormatText {
		return text
	}
	return Get(name).Render(text)
}

func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
