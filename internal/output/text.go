package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/vburojevic/logpar/internal/domain"
)

// TextWriter writes reports as styled text with tables
type TextWriter struct {
	w     io.Writer
	plain bool
}

// NewTextWriter creates a new text writer. Plain output carries no styling.
func NewTextWriter(w io.Writer, plain bool) *TextWriter {
	return &TextWriter{w: w, plain: plain}
}

func (w *TextWriter) render(style lipgloss.Style, s string) string {
	if w.plain {
		return s
	}
	return style.Render(s)
}

func (w *TextWriter) header(title string) error {
	_, err := io.WriteString(w.w, "\n"+w.render(Styles.Header, title)+"\n")
	return err
}

func (w *TextWriter) table(headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w.w)
	table.Header(headers)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func entryRows(entries []domain.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Key, strconv.FormatInt(e.Count, 10)})
	}
	return rows
}

// WriteReport outputs the keyword, IP and error message sections
func (w *TextWriter) WriteReport(r *domain.Report) error {
	if err := w.header("Keyword Frequency"); err != nil {
		return err
	}
	for _, kw := range domain.Keywords {
		// pad before styling so escape sequences do not count toward the width
		line := "  " + w.render(KeywordStyle(kw), fmt.Sprintf("%-8s", kw)) + " " +
			w.render(Styles.Value, strconv.FormatInt(r.Keywords.Get(kw), 10)) + "\n"
		if _, err := io.WriteString(w.w, line); err != nil {
			return err
		}
	}

	// --top 0 hides the ranked sections
	if r.TopN > 0 {
		if err := w.header(fmt.Sprintf("Top IPs (%d of %d)", len(r.TopIPs), r.UniqueIPs)); err != nil {
			return err
		}
		if err := w.table([]string{"IP", "Count"}, entryRows(r.TopIPs)); err != nil {
			return err
		}

		if err := w.header(fmt.Sprintf("Top Error Messages (%d of %d)", len(r.TopErrors), r.UniqueErrors)); err != nil {
			return err
		}
		if err := w.table([]string{"Message", "Count"}, entryRows(r.TopErrors)); err != nil {
			return err
		}
	}

	footer := "\n" + w.render(Styles.Label, "Lines: ") + w.render(Styles.Value, strconv.FormatInt(r.Lines, 10)) +
		" | " + w.render(Styles.Label, "Mode: ") + w.render(Styles.Value, r.Mode) +
		" | " + w.render(Styles.Label, "Workers: ") + w.render(Styles.Value, strconv.Itoa(r.Workers)) +
		" | " + w.render(Styles.Label, "Execution time: ") + w.render(Styles.Value, fmt.Sprintf("%.6fs", r.ElapsedSeconds)) + "\n"
	_, err := io.WriteString(w.w, footer)
	return err
}

// WriteBenchmarks outputs one table row per benchmarked file
func (w *TextWriter) WriteBenchmarks(results []*domain.BenchmarkResult) error {
	if err := w.header("Benchmark"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(results))
	for _, b := range results {
		rows = append(rows, []string{
			b.File,
			strconv.Itoa(b.Lines),
			formatSeconds(b.SerialSeconds),
			formatSeconds(b.ParallelSeconds),
			formatRatio(b.Speedup),
			formatRatio(b.Efficiency),
			w.render(StatusStyle(b.Consistent), StatusText(b.Consistent)),
		})
	}
	return w.table([]string{"File", "Lines", "Serial (s)", "Parallel (s)", "Speedup", "Efficiency (%)", "Status"}, rows)
}

// WriteError outputs a styled error
func (w *TextWriter) WriteError(code, message string, hint ...string) error {
	line := w.render(Styles.Danger, "Error") + " " + w.render(Styles.Warning, "["+code+"]") + ": " + message + "\n"
	if len(hint) > 0 && hint[0] != "" {
		line += w.render(Styles.Label, "Hint: ") + hint[0] + "\n"
	}
	_, err := io.WriteString(w.w, line)
	return err
}

// WriteWarning outputs a styled warning
func (w *TextWriter) WriteWarning(message string) error {
	_, err := io.WriteString(w.w, w.render(Styles.Warning, "Warning")+": "+message+"\n")
	return err
}
