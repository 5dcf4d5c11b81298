/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: printer.go
Description: Plain-text rendering of the observation table. Produces a
header of suffix columns, the short prefix block, a separator, and the long
prefix block, with caller-pluggable cell formatting.
*/

package table

import (
	"fmt"
	"strings"
)

// Render formats the table for terminal output. The format callback turns a
// cell value into text; passing nil falls back to fmt.Sprintf("%v", d).
// Cells without a recorded value render as "?".
func (t *Table[I, D]) Render(format func(D) string) string {
	if format == nil {
		format = func(d D) string { return fmt.Sprintf("%v", d) }
	}

	header := make([]string, 0, len(t.suffixes)+1)
	header = append(header, "")
	for _, suffix := range t.suffixes {
		header = append(header, suffix.String())
	}

	shortLines := t.renderRegion(t.shortKeys, format)
	longLines := t.renderRegion(t.longKeys, format)

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len([]rune(h))
	}
	for _, line := range append(append([][]string{}, shortLines...), longLines...) {
		for i, field := range line {
			if w := len([]rune(field)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeLine := func(fields []string) {
		for i, field := range fields {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(field)
			b.WriteString(strings.Repeat(" ", widths[i]-len([]rune(field))))
		}
		b.WriteByte('\n')
	}

	writeLine(header)
	total := 3 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("=", total))
	b.WriteByte('\n')
	for _, line := range shortLines {
		writeLine(line)
	}
	b.WriteString(strings.Repeat("-", total))
	b.WriteByte('\n')
	for _, line := range longLines {
		writeLine(line)
	}
	return b.String()
}

func (t *Table[I, D]) renderRegion(keys []string, format func(D) string) [][]string {
	lines := make([][]string, 0, len(keys))
	for _, key := range keys {
		r := t.rows[key]
		line := make([]string, 0, len(r.cells)+1)
		line = append(line, r.label.String())
		for _, c := range r.cells {
			if c.defined {
				line = append(line, format(c.value))
			} else {
				line = append(line, "?")
			}
		}
		lines = append(lines, line)
	}
	return lines
}
