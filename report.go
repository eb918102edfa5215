package assetgen

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints human-readable progress for a generation run.
// Styling is dropped automatically when w is not a color terminal.
type Reporter struct {
	w io.Writer

	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:       w,
		header:  r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Banner prints a run heading.
func (r *Reporter) Banner(title string) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.header.Render("=== "+title+" ==="))
}

// TaskStarted prints the "[i/n] title" line for a task.
func (r *Reporter) TaskStarted(index, total int, task Task) {
	fmt.Fprintf(r.w, "%s\n", r.header.Render(fmt.Sprintf("[%d/%d] %s", index, total, task.Title)))
}

// Attempt prints the start of one request attempt.
func (r *Reporter) Attempt(task Task, attempt int) {
	fmt.Fprintf(r.w, "  Generating: %s (attempt %d)...\n", task.FileName(), attempt)
}

// Saved prints a successful write.
func (r *Reporter) Saved(task Task, size int) {
	fmt.Fprintf(r.w, "  %s\n", r.success.Render(fmt.Sprintf("✓ Saved %s (%s)", task.FileName(), FormatKB(int64(size)))))
}

// NoImage prints a response that carried no image.
func (r *Reporter) NoImage() {
	fmt.Fprintf(r.w, "  %s\n", r.failure.Render("✗ No image in response"))
}

// Error prints a failed attempt.
func (r *Reporter) Error(err error) {
	msg := err.Error()
	if IsRateLimitError(err) {
		msg = "rate limited: " + msg
	}
	fmt.Fprintf(r.w, "  %s\n", r.failure.Render("✗ Error: "+msg))
}

// GaveUp prints a task that exhausted its attempts.
func (r *Reporter) GaveUp(task Task, attempts int) {
	fmt.Fprintf(r.w, "  %s\n", r.failure.Render(fmt.Sprintf("✗ Giving up on %s after %d attempts", task.FileName(), attempts)))
}

// Println prints a plain line.
func (r *Reporter) Println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

// FormatKB renders a byte count as whole kilobytes, e.g. 2048 -> "2KB".
func FormatKB(size int64) string {
	return fmt.Sprintf("%.0fKB", float64(size)/1024)
}
