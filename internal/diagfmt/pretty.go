package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"interlit/internal/diag"
	"interlit/internal/source"
)

// Pretty renders diagnostics in a human-readable form, one block per
// diagnostic (call bag.Sort() beforehand for stable order):
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	  <source line>
//	  ^~~~ underline over the primary span
//
// Notes follow the same shape, indented, when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	sevColor := map[diag.Severity]*color.Color{
		diag.SevError:   color.New(color.FgRed, color.Bold),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevInfo:    color.New(color.FgCyan),
	}
	for _, c := range sevColor {
		if !opts.Color {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}

	for _, d := range bag.Items() {
		head := headline(d, fs, opts)
		if c, ok := sevColor[d.Severity]; ok {
			parts := strings.SplitN(head, ": ", 2)
			if len(parts) == 2 {
				fmt.Fprintf(w, "%s: %s\n", parts[0], c.Sprint(parts[1]))
			} else {
				fmt.Fprintln(w, head)
			}
		} else {
			fmt.Fprintln(w, head)
		}
		writeContext(w, fs, d.Primary)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				if fs.Get(n.Span.File) == nil {
					fmt.Fprintf(w, "  note: %s\n", n.Msg)
					continue
				}
				start, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
					displayPath(fs, n.Span.File, opts.PathMode), start.Line, start.Col, n.Msg)
				writeContext(w, fs, n.Span)
			}
		}
	}
}

func headline(d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) string {
	if fs.Get(d.Primary.File) == nil {
		// e.g. an I/O error raised before any file entered the set
		return fmt.Sprintf("%s %s: %s", d.Severity.String(), d.Code.ID(), d.Message)
	}
	start, _ := fs.Resolve(d.Primary)
	return fmt.Sprintf("%s:%d:%d: %s %s: %s",
		displayPath(fs, d.Primary.File, opts.PathMode), start.Line, start.Col,
		d.Severity.String(), d.Code.ID(), d.Message)
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	f := fs.Get(id)
	if f == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(f.Path)
	}
	return f.Path
}

// writeContext prints the source line holding the span's start plus a caret
// underline. Display columns come from rune widths, not byte offsets, so
// wide characters underline correctly.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	f := fs.Get(sp.File)
	if f == nil || sp.Start > uint32(len(f.Content)) {
		return
	}
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && sp.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// bytes on this line before the span start, converted to display width
	prefixBytes := int(start.Col) - 1
	if prefixBytes > len(line) {
		prefixBytes = len(line)
	}
	pad := runewidth.StringWidth(line[:prefixBytes])

	spanBytes := int(sp.Len())
	if end.Line != start.Line {
		spanBytes = len(line) - prefixBytes // clamp multi-line spans to the first line
	}
	limit := prefixBytes + spanBytes
	if limit > len(line) {
		limit = len(line)
	}
	width := runewidth.StringWidth(line[prefixBytes:limit])
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "  %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}
