package report

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arloliu/varistat/anova"
	"github.com/arloliu/varistat/internal/options"
	"github.com/arloliu/varistat/nelson"
	"github.com/arloliu/varistat/regression"
	"github.com/arloliu/varistat/stats"
)

// Renderer turns results into tables. It is safe for concurrent use.
type Renderer struct {
	cfg Config
}

var defaultRenderer = Renderer{cfg: Config{Format: FormatText, Precision: DefaultPrecision}}

// NewRenderer creates a renderer; without options it renders text tables
// with DefaultPrecision decimals.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg, err := options.Build(defaultRenderer.cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Renderer{cfg: cfg}, nil
}

func (r *Renderer) f(v float64) string {
	return FormatFloat(v, r.cfg.Precision)
}

func (r *Renderer) opt(v *float64) string {
	return FormatOptional(v, r.cfg.Precision)
}

func (r *Renderer) newTable(title string, header table.Row, numericFrom int) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	if title != "" && r.cfg.Format == FormatText {
		t.SetTitle(title)
	}
	t.AppendHeader(header)

	configs := make([]table.ColumnConfig, 0, len(header))
	for i := numericFrom; i <= len(header); i++ {
		configs = append(configs, table.ColumnConfig{Number: i, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	return t
}

func (r *Renderer) render(t table.Writer) string {
	switch r.cfg.Format {
	case FormatMarkdown:
		return t.RenderMarkdown()
	case FormatCSV:
		return t.RenderCSV()
	default:
		return t.Render()
	}
}

// Stats renders the descriptive and capability summary as a two-column table.
func (r *Renderer) Stats(res stats.Result) string {
	t := r.newTable("Summary", table.Row{"Statistic", "Value"}, 2)
	t.AppendRows([]table.Row{
		{"N", strconv.Itoa(res.N)},
		{"Mean", r.f(res.Mean)},
		{"Std Dev", r.f(res.StdDev)},
		{"UCL", r.f(res.UCL)},
		{"LCL", r.f(res.LCL)},
		{"Min", r.f(res.Min)},
		{"Median", r.f(res.Median)},
		{"Max", r.f(res.Max)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"USL", r.opt(res.USL)},
		{"LSL", r.opt(res.LSL)},
		{"Target", r.opt(res.Target)},
		{"Cp", r.opt(res.Cp)},
		{"Cpk", r.opt(res.Cpk)},
		{"Out of Spec %", FormatFloat(res.OutOfSpecPercentage, 2)},
	})

	return r.render(t)
}

// Grades renders the grade counts, or an empty string when none were computed.
func (r *Renderer) Grades(res stats.Result) string {
	if len(res.GradeCounts) == 0 {
		return ""
	}

	t := r.newTable("Grades", table.Row{"Grade", "Color", "Count", "%"}, 3)
	for _, g := range res.GradeCounts {
		t.AppendRow(table.Row{g.Label, g.Color, strconv.Itoa(g.Count), FormatFloat(g.Percentage, 2)})
	}

	return r.render(t)
}

// Violations renders the flagged points of a rule with their values.
func (r *Renderer) Violations(rule string, values []float64, v nelson.ViolationSet) string {
	t := r.newTable(rule, table.Row{"Index", "Value"}, 1)
	for _, i := range v.Indices() {
		if i < 0 || i >= len(values) {
			continue
		}
		t.AppendRow(table.Row{strconv.Itoa(i), r.f(values[i])})
	}
	t.AppendFooter(table.Row{"Total", strconv.Itoa(v.Len())})

	return r.render(t)
}

// Anova renders a one-way ANOVA table followed by the per-group summary.
func (r *Renderer) Anova(tbl *anova.Table) string {
	t := r.newTable(fmt.Sprintf("ANOVA: %s by %s", tbl.Outcome, tbl.Factor),
		table.Row{"Source", "SS", "df", "MS", "F", "p"}, 2)
	t.AppendRows([]table.Row{
		{tbl.Factor, r.f(tbl.SSBetween), strconv.Itoa(tbl.DFBetween), r.f(tbl.MSBetween), r.f(tbl.F), FormatPValue(tbl.PValue, r.cfg.Precision)},
		{"Residual", r.f(tbl.SSWithin), strconv.Itoa(tbl.DFWithin), r.f(tbl.MSWithin), "", ""},
		{"Total", r.f(tbl.SSTotal), strconv.Itoa(tbl.DFTotal), "", "", ""},
	})
	t.AppendFooter(table.Row{"η²", r.f(tbl.EtaSquared)})

	g := r.newTable("Groups", table.Row{tbl.Factor, "N", "Mean", "Std Dev"}, 2)
	for _, grp := range tbl.Groups {
		g.AppendRow(table.Row{grp.Level, strconv.Itoa(grp.N), r.f(grp.Mean), r.f(grp.StdDev)})
	}

	return r.render(t) + "\n" + r.render(g)
}

// Coefficients renders the coefficient table of a fitted model.
func (r *Renderer) Coefficients(m *regression.Model) string {
	t := r.newTable(fmt.Sprintf("Regression: %s", m.Outcome),
		table.Row{"Term", "Type", "Coefficient", "Std Error", "t", "p", "Std. Coef", "VIF"}, 3)

	ic := m.Intercept
	t.AppendRow(table.Row{ic.Term, "", r.f(ic.Coefficient), r.f(ic.StdError), r.f(ic.TStatistic),
		FormatPValue(ic.PValue, r.cfg.Precision), "", ""})

	for _, c := range m.Coefficients {
		p := FormatPValue(c.PValue, r.cfg.Precision)
		if !c.IsSignificant {
			p += " (ns)"
		}
		t.AppendRow(table.Row{c.Term, c.TermInfo.Type.String(), r.f(c.Coefficient), r.f(c.StdError),
			r.f(c.TStatistic), p, r.f(c.Standardized), r.opt(c.VIF)})
	}

	t.AppendFooter(table.Row{
		"R²", r.f(m.RSquared),
		"Adj R²", r.f(m.AdjustedRSquared),
		"N", strconv.Itoa(m.N),
		"df", strconv.Itoa(m.DF),
	})

	return r.render(t)
}

// Reduction renders the removal steps of a backward elimination.
func (r *Renderer) Reduction(red *regression.Reduction) string {
	t := r.newTable("Backward elimination", table.Row{"Step", "Removed", "Reason", "p", "VIF"}, 4)
	for i, s := range red.Steps {
		t.AppendRow(table.Row{strconv.Itoa(i + 1), s.Removed.TermInfo.Name(), string(s.Removed.Reason),
			FormatPValue(s.Removed.PValue, r.cfg.Precision), r.opt(s.Removed.VIF)})
	}

	return r.render(t)
}

// Stats renders res with the default renderer.
func Stats(res stats.Result) string { return defaultRenderer.Stats(res) }

// Grades renders the grade counts of res with the default renderer.
func Grades(res stats.Result) string { return defaultRenderer.Grades(res) }

// Anova renders tbl with the default renderer.
func Anova(tbl *anova.Table) string { return defaultRenderer.Anova(tbl) }

// Coefficients renders m with the default renderer.
func Coefficients(m *regression.Model) string { return defaultRenderer.Coefficients(m) }

// SuggestionLine describes a removal suggestion in one line.
func SuggestionLine(s *regression.Suggestion) string {
	if s == nil {
		return "No term removal suggested: every term is significant and VIF-clean."
	}

	name := s.TermInfo.Name()
	if name == "" {
		name = s.Term
	}

	return fmt.Sprintf("Suggest removing %s (%s): %s", name, s.Reason, s.Explanation)
}
