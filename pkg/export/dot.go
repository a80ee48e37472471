package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/blocks/pkg/board"
)

// Palette maps board colors to fill colors. Index 0 is the empty cell;
// colors past the end wrap around the non-empty entries.
var Palette = []string{
	"#2b2b33", // empty
	"#e8505b",
	"#f9a03f",
	"#f6d743",
	"#5ec26a",
	"#3fb8c9",
	"#4a7fe0",
	"#9b5de5",
	"#f15bb5",
	"#c0c0c8",
}

// Hex returns the fill color of c.
func Hex(c board.Color) string {
	if c == board.Empty {
		return Palette[0]
	}
	return Palette[1+(int(c)-1)%(len(Palette)-1)]
}

// Options configures DOT output.
type Options struct {
	// CellSize is the edge of one board cell in points.
	CellSize int
	// Pieces draws the active selection below the board.
	Pieces bool
}

func (o Options) cellSize() int {
	if o.CellSize <= 0 {
		return 24
	}
	return o.CellSize
}

// ToDOT converts a snapshot to Graphviz DOT source.
func ToDOT(s Snapshot, opts Options) string {
	cell := opts.cellSize()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, margin=0];\n")
	buf.WriteString("  ranksep=0.3;\n")
	buf.WriteString("\n")

	title := fmt.Sprintf("score %d (%s)", s.Score, s.State)
	fmt.Fprintf(&buf, "  board [label=<%s>];\n", table(title, s.Size, s.Size, cell, func(x, y int) (string, bool) {
		return Hex(s.Color(x, y)), true
	}))

	if opts.Pieces {
		var ids []string
		for _, sl := range s.Selection {
			if !sl.Active || len(sl.Rows) == 0 {
				continue
			}
			id := fmt.Sprintf("slot%d", sl.Slot)
			ids = append(ids, id)
			rows, fill := sl.Rows, Hex(board.Color(sl.Color))
			fmt.Fprintf(&buf, "  %s [label=<%s>];\n", id, table(sl.Shape, len(rows[0]), len(rows), cell/2, func(x, y int) (string, bool) {
				if rows[y][x] == '.' || rows[y][x] == '0' {
					return "", false
				}
				return fill, true
			}))
		}
		if len(ids) > 0 {
			buf.WriteString("\n")
			fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(ids, "; "))
			for _, id := range ids {
				fmt.Fprintf(&buf, "  board -> %s [style=invis];\n", id)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// table renders a w×h HTML-like label. fill returns the cell color and
// whether the cell is drawn at all.
func table(caption string, w, h, cell int, fill func(x, y int) (string, bool)) string {
	var b strings.Builder
	b.WriteString(`<TABLE BORDER="0" CELLBORDER="0" CELLSPACING="2" CELLPADDING="0">`)
	fmt.Fprintf(&b, `<TR><TD COLSPAN="%d"><FONT POINT-SIZE="10">%s</FONT></TD></TR>`, w, htmlEscape(caption))
	for y := range h {
		b.WriteString("<TR>")
		for x := range w {
			color, ok := fill(x, y)
			if !ok {
				fmt.Fprintf(&b, `<TD FIXEDSIZE="TRUE" WIDTH="%d" HEIGHT="%d"></TD>`, cell, cell)
				continue
			}
			fmt.Fprintf(&b, `<TD FIXEDSIZE="TRUE" WIDTH="%d" HEIGHT="%d" BGCOLOR="%s"></TD>`, cell, cell, color)
		}
		b.WriteString("</TR>")
	}
	b.WriteString("</TABLE>")
	return b.String()
}

var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func htmlEscape(s string) string { return htmlReplacer.Replace(s) }

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
