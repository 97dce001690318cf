package grid

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vovakirdan/gridtris/internal/core"
)

// ErrNoCells is returned when a document has no contribution day cells.
var ErrNoCells = errors.New("grid: no contribution cells found")

// PageOptions controls how a profile page is scanned.
type PageOptions struct {
	Layout Layout

	// IndexBase is subtracted from the index attribute to get the column.
	// Profile calendars are read 1-based; the zero value reads them 0-based.
	IndexBase int

	CellClass string // Defaults to "ContributionCalendar-day"
	IndexAttr string // Defaults to "data-ix"
	LevelAttr string // Defaults to "data-level"

	Logger *log.Logger
}

func (o *PageOptions) setDefaults() {
	if o.CellClass == "" {
		o.CellClass = "ContributionCalendar-day"
	}
	if o.IndexAttr == "" {
		o.IndexAttr = "data-ix"
	}
	if o.LevelAttr == "" {
		o.LevelAttr = "data-level"
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// Page is a Renderer backed by a parsed HTML document.
// Levels are stored in the level attribute of each day cell, so rendering
// the document back out shows the board the way the host page would.
type Page struct {
	doc     *html.Node
	opts    PageOptions
	cells   map[core.Point]*html.Node
	dropped int
}

// ParsePage parses a document and maps its day cells to board coordinates.
// The column comes from the index attribute; the row is the position of the
// enclosing <tr> among its parent's element children. Every mapped cell is
// reset to LevelEmpty.
func ParsePage(r io.Reader, opts PageOptions) (*Page, error) {
	opts.setDefaults()

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("grid: cannot parse page: %w", err)
	}

	p := &Page{
		doc:   doc,
		opts:  opts,
		cells: make(map[core.Point]*html.Node),
	}
	p.scan(doc)

	if len(p.cells) == 0 {
		return nil, ErrNoCells
	}
	if p.dropped > 0 {
		opts.Logger.Warn("cells outside the board were ignored",
			"dropped", p.dropped,
			"rows", opts.Layout.Rows,
			"columns", opts.Layout.Columns,
		)
	}
	return p, nil
}

func (p *Page) scan(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Td && hasClass(n, p.opts.CellClass) {
		p.addCell(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.scan(c)
	}
}

func (p *Page) addCell(n *html.Node) {
	raw, ok := attr(n, p.opts.IndexAttr)
	if !ok {
		p.dropped++
		return
	}
	ix, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.opts.Logger.Debug("bad index attribute", "value", raw)
		p.dropped++
		return
	}

	row := rowIndex(n)
	col := ix - p.opts.IndexBase
	if row < 0 || !p.opts.Layout.Contains(row, col) {
		p.dropped++
		return
	}

	pt := core.Point{X: col, Y: row}
	if _, dup := p.cells[pt]; dup {
		p.opts.Logger.Debug("duplicate cell ignored", "row", row, "col", col)
		p.dropped++
		return
	}
	p.cells[pt] = n
	setAttr(n, p.opts.LevelAttr, string(LevelEmpty))
}

// SetLevel implements Renderer.
func (p *Page) SetLevel(row, col int, level Level) {
	n, ok := p.cells[core.Point{X: col, Y: row}]
	if !ok {
		return
	}
	setAttr(n, p.opts.LevelAttr, string(level))
}

// Level implements Renderer. A value outside the level protocol, written by
// something other than the engine, reads as LevelEmpty.
func (p *Page) Level(row, col int) (Level, bool) {
	n, ok := p.cells[core.Point{X: col, Y: row}]
	if !ok {
		return "", false
	}
	v, _ := attr(n, p.opts.LevelAttr)
	if lvl := Level(v); lvl.Valid() {
		return lvl, true
	}
	return LevelEmpty, true
}

// Layout returns the geometry the page was scanned with.
func (p *Page) Layout() Layout {
	return p.opts.Layout
}

// CellCount returns how many cells were mapped onto the board.
func (p *Page) CellCount() int {
	return len(p.cells)
}

// Dropped returns how many day cells could not be mapped.
func (p *Page) Dropped() int {
	return p.dropped
}

// Render writes the document, with current levels, as HTML.
func (p *Page) Render(w io.Writer) error {
	if err := html.Render(w, p.doc); err != nil {
		return fmt.Errorf("grid: cannot render page: %w", err)
	}
	return nil
}

// rowIndex finds the closest <tr> ancestor and returns its position among
// its parent's element children, or -1 when there is none.
func rowIndex(n *html.Node) int {
	tr := n.Parent
	for tr != nil && !(tr.Type == html.ElementNode && tr.DataAtom == atom.Tr) {
		tr = tr.Parent
	}
	if tr == nil || tr.Parent == nil {
		return -1
	}

	i := 0
	for c := tr.Parent.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c == tr {
			return i
		}
		i++
	}
	return -1
}

func hasClass(n *html.Node, class string) bool {
	v, ok := attr(n, "class")
	if !ok {
		return false
	}
	for _, f := range strings.Fields(v) {
		if f == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
