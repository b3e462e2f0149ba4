package ui

import (
	"strings"
)

// Align type for table column alignment
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TableColumn defines a column in a table
type TableColumn struct {
	Header   string
	Align    Align
	MinWidth int
}

// TableBorder style for tables
type TableBorder int

const (
	BorderUnicode TableBorder = iota
	BorderASCII
	BorderNone
)

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    [][]string
	Border  TableBorder
	Padding int
}

type boxChars struct {
	tl, tr, bl, br  string // corners
	h, v            string // horizontal, vertical
	t, ml, m, mr, b string // tees and crosses
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
	noBox = boxChars{v: " "}
)

// RenderTable renders a formatted table. Cells may contain ANSI styling.
// Missing cells in short rows render empty.
func RenderTable(opts RenderTableOptions) string {
	if opts.Padding == 0 {
		opts.Padding = 1
	}

	box := unicodeBox
	switch opts.Border {
	case BorderASCII:
		box = asciiBox
	case BorderNone:
		box = noBox
	}

	// Content widths, excluding padding
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		widths[i] = max(col.MinWidth, VisibleWidth(col.Header))
		for _, row := range opts.Rows {
			widths[i] = max(widths[i], VisibleWidth(cell(row, i)))
		}
	}

	pad := spaces(opts.Padding)

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+opts.Padding*2)
		}
		return left + strings.Join(parts, mid) + right
	}

	line := func(values []string) string {
		parts := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			parts[i] = pad + align(cell(values, i), widths[i], col.Align) + pad
		}
		return box.v + strings.Join(parts, box.v) + box.v
	}

	headers := make([]string, len(opts.Columns))
	for i, col := range opts.Columns {
		headers[i] = Bold("%s", col.Header)
	}

	var lines []string
	if opts.Border != BorderNone {
		lines = append(lines, rule(box.tl, box.t, box.tr))
	}
	lines = append(lines, line(headers))
	if opts.Border != BorderNone {
		lines = append(lines, rule(box.ml, box.m, box.mr))
	}
	for _, row := range opts.Rows {
		lines = append(lines, line(row))
	}
	if opts.Border != BorderNone {
		lines = append(lines, rule(box.bl, box.b, box.br))
	}

	return strings.Join(lines, "\n") + "\n"
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func align(text string, width int, a Align) string {
	switch a {
	case AlignRight:
		return PadLeft(text, width)
	case AlignCenter:
		return PadCenter(text, width)
	default:
		return PadRight(text, width)
	}
}
