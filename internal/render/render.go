package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/davidbz/unitecon/internal/domain"
)

// Column widths per table.
var (
	catalogColumns    = []int{32, 8, 16, 26}
	scenarioColumns   = []int{38, 24, 32}
	comparisonColumns = []int{24, 32, 14, 14}
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")) // blue
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)   // gray
	profitStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // green
	lossStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // red
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // yellow
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveMark = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render("inactive")
)

// Report renders one evaluation as a labelled block. Losses are shown in red.
func Report(evaluation *domain.Evaluation) string {
	var b strings.Builder

	entity := evaluation.Entity
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", entity.DisplayName, entity.ID)))
	b.WriteString("\n")

	row(&b, "Media / price kind", fmt.Sprintf("%s / %s", entity.MediaType, entity.PriceKind))
	row(&b, "Pricing mode", string(evaluation.PricingMode))
	row(&b, "Cost rule", costRuleText(evaluation.Cost))

	if evaluation.Historical.Available() {
		row(&b, "Historical cost", fmt.Sprintf("%s over %d requests", usd(*evaluation.Historical.Cost), evaluation.Historical.Count))
	} else {
		row(&b, "Historical cost", "no data")
	}

	report := evaluation.Report
	if report == nil {
		row(&b, "Cost per request", usd(evaluation.Cost.CostPerRequest))
		b.WriteString(warnStyle.Render("Margin unavailable: " + evaluation.ReportError))
		b.WriteString("\n")
		return b.String()
	}

	row(&b, "Price in USD", usd(report.PriceInUSD))
	row(&b, "Credits per request", fmt.Sprintf("%.2f", report.CreditsPerRequest))
	row(&b, "Price per credit", usd(report.PricePerCredit))
	row(&b, "Price per request", usd(report.PricePerRequest))
	row(&b, "Cost per request", usd(report.CostPerRequest))
	row(&b, "Cost with overhead", usd(report.CostWithOverhead))
	row(&b, "Profit per request", signed(report.ProfitPerRequest, usd(report.ProfitPerRequest)))
	row(&b, "Margin", signed(report.ProfitPerRequest, fmt.Sprintf("%.1f%%", report.MarginPercent)))
	row(&b, "Total cost", usd(report.TotalCost))
	row(&b, "Total profit", signed(report.TotalProfit, usd(report.TotalProfit)))

	return b.String()
}

// Catalog renders the entity list as a table.
func Catalog(snapshot domain.CatalogSnapshot) string {
	var b strings.Builder

	if snapshot.Error != "" {
		b.WriteString(lossStyle.Render("Catalog failed to load: " + snapshot.Error))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(columns(catalogColumns, "ID", "MEDIA", "KIND", "BASE PRICE", "VARIANTS")))
	b.WriteString("\n")

	for _, entity := range snapshot.Entities {
		price := usd(entity.BaseInputPrice)
		if entity.BaseOutputPrice != nil {
			price = fmt.Sprintf("%s / %s", usd(entity.BaseInputPrice), usd(*entity.BaseOutputPrice))
		}

		line := columns(catalogColumns, entity.ID, string(entity.MediaType), string(entity.PriceKind), price, variantKeys(entity))
		if !entity.Active {
			line += " " + inactiveMark
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%d entities, generation %d\n", len(snapshot.Entities), snapshot.Generation)
	return b.String()
}

// Scenarios renders the saved scenario list.
func Scenarios(scenarios []domain.SavedScenario) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(columns(scenarioColumns, "ID", "NAME", "ENTITY", "CREATED")))
	b.WriteString("\n")

	for _, s := range scenarios {
		b.WriteString(columns(scenarioColumns, s.ID, s.Name, s.EntityID, s.CreatedAt.Format("2006-01-02 15:04")))
		b.WriteString("\n")
	}
	return b.String()
}

// Comparison renders saved scenarios recomputed against the live catalog.
func Comparison(comparisons []domain.ScenarioComparison) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(columns(comparisonColumns, "NAME", "ENTITY", "COST/REQ", "PROFIT/REQ", "MARGIN")))
	b.WriteString("\n")

	for _, c := range comparisons {
		switch {
		case c.Evaluation == nil:
			b.WriteString(columns(comparisonColumns, c.Scenario.Name, c.Scenario.EntityID, "", ""))
			b.WriteString(warnStyle.Render(c.Error))
		case c.Evaluation.Report == nil:
			b.WriteString(columns(comparisonColumns, c.Scenario.Name, c.Scenario.EntityID, usd(c.Evaluation.Cost.CostPerRequest), ""))
			b.WriteString(warnStyle.Render(c.Evaluation.ReportError))
		default:
			report := c.Evaluation.Report
			b.WriteString(columns(
				comparisonColumns,
				c.Scenario.Name,
				c.Scenario.EntityID,
				usd(report.CostPerRequest),
				signed(report.ProfitPerRequest, usd(report.ProfitPerRequest)),
				signed(report.ProfitPerRequest, fmt.Sprintf("%.1f%%", report.MarginPercent)),
			))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func row(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

// columns pads each cell to its width. Cells past the last width are not padded.
func columns(widths []int, cells ...string) string {
	rendered := make([]string, 0, len(cells))
	for i, cell := range cells {
		if i >= len(widths) {
			rendered = append(rendered, cell)
			continue
		}
		rendered = append(rendered, lipgloss.NewStyle().Width(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func signed(amount float64, text string) string {
	if amount < 0 {
		return lossStyle.Render(text)
	}
	return profitStyle.Render(text)
}

func usd(amount float64) string {
	return fmt.Sprintf("$%.6f", amount)
}

func costRuleText(cost domain.CostResolution) string {
	text := string(cost.Rule)
	switch {
	case cost.VariantKey != "":
		text += " (" + cost.VariantKey + ")"
	case cost.VariantsAveraged > 0:
		text += fmt.Sprintf(" (%d variants)", cost.VariantsAveraged)
	}
	if cost.FellBackToBase {
		text += ", fell back to base price"
	}
	return text
}

func variantKeys(entity domain.PriceableEntity) string {
	if !entity.HasVariants() {
		return "-"
	}

	keys := make([]string, 0, len(entity.Variants))
	for _, v := range entity.Variants {
		keys = append(keys, v.Key)
	}
	return strings.Join(keys, ",")
}
