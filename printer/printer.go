package printer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette holds the colors used for the parts of an output line.
type Palette struct {
	Depth    *color.Color
	Internal *color.Color
	Leaf     *color.Color
}

// Options configures the output of a tree.
type Options struct {
	// Width is the maximum number of display cells per line; 0 means unlimited.
	Width int
	// Indent is repeated once per level of depth.
	Indent string
	// Colors switches on colored output, using Palette.
	Colors  bool
	Palette *Palette
	// Context determines the display width of East Asian characters.
	Context *uax11.Context
}

// DefaultOptions returns options for uncolored output of unlimited width.
func DefaultOptions() *Options {
	return &Options{
		Indent:  "  ",
		Context: uax11.LatinContext,
	}
}

// DefaultPalette returns the palette used when Options.Palette is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Depth:    color.New(color.Faint),
		Internal: color.New(color.FgBlue, color.Bold),
		Leaf:     color.New(color.FgGreen),
	}
}

// OptionsFromTerminal is a simple helper for creating printer options.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets Options.Width accordingly and switches on colors.
func OptionsFromTerminal() *Options {
	opts := DefaultOptions()
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil {
			opts.Width = 80
		} else if w > 10 {
			opts.Width = w
		} else {
			opts.Width = 10
		}
		opts.Colors = true
		opts.Context = uax11.ContextFromEnvironment()
	}
	tracer().P("printer", "console").Infof("setting line width to %d en", opts.Width)
	return opts
}

var setupGraphemes sync.Once

// Fprint writes tree to w, one line per node in pre-order, preceded by a
// header line. An empty tree is reported as "empty, order t". If opts is nil,
// DefaultOptions is used.
func Fprint[K any](w io.Writer, tree *btree.Tree[K], opts *Options) error {
	if tree == nil {
		return fmt.Errorf("printer: nil tree")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Context == nil {
		o.Context = uax11.LatinContext
	}
	opts = &o
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	p := &printer{opts: opts}
	if opts.Colors {
		p.palette = opts.Palette
		if p.palette == nil {
			p.palette = DefaultPalette()
		}
		p.palette.enable()
	}
	if tree.IsEmpty() {
		_, err := fmt.Fprintf(w, "empty, order %d\n", tree.Order())
		return err
	}
	header := fmt.Sprintf("order %d, %d keys, height %d", tree.Order(), tree.Len(), tree.Height())
	if _, err := fmt.Fprintln(w, p.fit(header)); err != nil {
		return err
	}
	for info := range tree.Nodes() {
		if _, err := fmt.Fprintln(w, p.line(info.Depth, info.Leaf, keyString(info.Keys))); err != nil {
			return err
		}
	}
	return nil
}

// Sprint returns the output of Fprint as a string. For a nil tree it
// returns the error text "printer: nil tree".
func Sprint[K any](tree *btree.Tree[K], opts *Options) string {
	var b strings.Builder
	if err := Fprint(&b, tree, opts); err != nil {
		return err.Error()
	}
	return b.String()
}

// --- Line formatting -------------------------------------------------------

type printer struct {
	opts    *Options
	palette *Palette // nil for uncolored output
}

func (pal *Palette) enable() {
	for _, c := range []*color.Color{pal.Depth, pal.Internal, pal.Leaf} {
		if c != nil {
			c.EnableColor()
		}
	}
}

func keyString[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprint(k)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// line formats a node line. Width is computed on the plain text, colors are
// applied afterwards.
func (p *printer) line(depth int, leaf bool, keys string) string {
	indent := strings.Repeat(p.opts.Indent, depth)
	kind := "internal"
	if leaf {
		kind = "leaf"
	}
	prefix := fmt.Sprintf("%s%d %s ", indent, depth, kind)
	keys = p.truncate(keys, p.opts.Width-p.width(prefix))
	if p.palette == nil {
		return prefix + keys
	}
	kc := p.palette.Internal
	if leaf {
		kc = p.palette.Leaf
	}
	return indent + sprint(p.palette.Depth, depth) + " " + sprint(kc, kind) + " " + sprint(kc, keys)
}

func (p *printer) fit(s string) string {
	return p.truncate(s, p.opts.Width)
}

func sprint(c *color.Color, a any) string {
	if c == nil {
		return fmt.Sprint(a)
	}
	return c.Sprint(a)
}

// width returns the number of display cells of s.
func (p *printer) width(s string) int {
	if isASCII(s) {
		return len(s)
	}
	gstr := grapheme.StringFromString(s)
	w := 0
	for i := 0; i < gstr.Len(); i++ {
		w += p.graphemeWidth(gstr.Nth(i))
	}
	return w
}

// graphemeWidth returns the number of display cells of a single grapheme.
// ASCII is always narrow; uax11 is consulted for everything else.
func (p *printer) graphemeWidth(g string) int {
	if len(g) == 1 && g[0] < utf8.RuneSelf {
		return 1
	}
	return uax11.StringWidth(grapheme.StringFromString(g), p.opts.Context)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// truncate shortens s to at most limit display cells, marking the cut with an
// ellipsis. With unlimited Width, s is returned unchanged.
func (p *printer) truncate(s string, limit int) string {
	if p.opts.Width <= 0 || p.width(s) <= limit {
		return s
	}
	if limit < 1 {
		return "…"
	}
	gstr := grapheme.StringFromString(s)
	var b strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := p.graphemeWidth(g)
		if used+gw > limit-1 {
			break
		}
		b.WriteString(g)
		used += gw
	}
	b.WriteString("…")
	return b.String()
}
