// Package browser owns the per-page pipeline: fetch, parse, cascade,
// layout, paint, plus the scroll and resize events that re-run the
// later stages.
package browser

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"lumen/pkg/css"
	"lumen/pkg/html"
	"lumen/pkg/layout"
	"lumen/pkg/net"
	"lumen/pkg/text"
)

// State tracks how far the pipeline has run for the current document.
type State int

const (
	StateEmpty State = iota
	StateParsed
	StateStyled
	StateLaidOut
)

// ErrNotLoaded is returned when an operation requires a loaded document
// and none exists.
var ErrNotLoaded = errors.New("browser: page not loaded")

// Fetcher resolves a URL to bytes. It mirrors net.Fetch and exists so
// tests and embedders can substitute transports.
type Fetcher func(url string) ([]byte, error)

// Resolver resolves a reference against a base URL.
type Resolver func(base, ref string) (string, error)

// Page is one logical document plus its derived trees. It is mutated
// only by the owning event handler; no internal concurrency.
type Page struct {
	log      *zap.Logger
	measurer text.Measurer
	fetch    Fetcher
	resolve  Resolver

	viewportWidth  float64
	viewportHeight float64

	state   State
	url     string
	root    *html.Node
	rules   []css.Rule
	tree    *layout.Node
	display layout.DisplayList
	scrollY float64
}

func NewPage(measurer text.Measurer) *Page {
	return &Page{
		log:            zap.NewNop(),
		measurer:       measurer,
		fetch:          net.Fetch,
		resolve:        net.Resolve,
		viewportWidth:  layout.Width,
		viewportHeight: layout.Height,
	}
}

func (p *Page) SetLogger(log *zap.Logger) { p.log = log }

// SetFetcher substitutes the network collaborator.
func (p *Page) SetFetcher(fetch Fetcher, resolve Resolver) {
	p.fetch = fetch
	p.resolve = resolve
}

// SetViewport sets the viewport without triggering a layout pass; use
// Resize once a document is loaded.
func (p *Page) SetViewport(width, height float64) {
	p.viewportWidth = width
	p.viewportHeight = height
}

func (p *Page) State() State     { return p.state }
func (p *Page) URL() string      { return p.url }
func (p *Page) ScrollY() float64 { return p.scrollY }
func (p *Page) Root() *html.Node { return p.root }

// Load fetches and renders the page at rawURL. A failed fetch leaves
// any previously loaded document intact and returns the typed network
// error. Linked stylesheet failures are logged and skipped, never
// fatal.
func (p *Page) Load(rawURL string) error {
	body, err := p.fetch(rawURL)
	if err != nil {
		p.log.Error("page load failed",
			zap.String("url", rawURL), zap.Error(err))
		return err
	}
	p.url = rawURL
	return p.render(string(body))
}

// LoadHTML runs the same pipeline on markup already in hand (files,
// tests, editors). Linked stylesheets are still fetched when a base URL
// was set by a prior Load.
func (p *Page) LoadHTML(markup string) error {
	return p.render(markup)
}

func (p *Page) render(markup string) error {
	p.root = html.Parse(markup)
	p.state = StateParsed

	rules := append([]css.Rule{}, css.DefaultStyleSheet()...)
	linked, sheetErr := p.linkedRules()
	rules = append(rules, linked...)
	if sheetErr != nil {
		p.log.Warn("some stylesheets failed to load", zap.Error(sheetErr))
	}
	css.SortRules(rules)
	css.Style(p.root, rules)
	p.rules = rules
	p.state = StateStyled

	p.scrollY = 0
	return p.relayout()
}

// linkedRules fetches and parses every <link rel="stylesheet"> in the
// document. Individual failures are aggregated and reported; the
// surviving sheets are returned in document order.
func (p *Page) linkedRules() ([]css.Rule, error) {
	var rules []css.Rule
	var errs error
	for _, href := range stylesheetLinks(p.root) {
		resolved, err := p.resolve(p.url, href)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("resolving %q: %w", href, err))
			continue
		}
		body, err := p.fetch(resolved)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		rules = append(rules, css.ParseStylesheet(string(body))...)
	}
	return rules, errs
}

func stylesheetLinks(root *html.Node) []string {
	var hrefs []string
	root.Walk(func(n *html.Node) {
		if n.Type != html.ElementNode || n.TagName != "link" {
			return
		}
		if rel, _ := n.GetAttribute("rel"); rel != "stylesheet" {
			return
		}
		if href, ok := n.GetAttribute("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}

// relayout rebuilds the layout tree and display list from the styled
// document. The previous trees are discarded wholesale.
func (p *Page) relayout() error {
	engine := layout.NewEngine(p.viewportWidth, p.viewportHeight, p.measurer)
	tree, err := engine.Layout(p.root)
	if err != nil {
		return err
	}
	p.tree = tree
	p.display = layout.PaintTree(tree)
	p.state = StateLaidOut
	return nil
}

// Resize changes the viewport and performs a full re-layout from the
// already-styled document tree.
func (p *Page) Resize(width, height float64) error {
	if p.state < StateStyled {
		return ErrNotLoaded
	}
	p.viewportWidth = width
	p.viewportHeight = height
	return p.relayout()
}

// Scroll adjusts the vertical scroll offset by delta, clamped to the
// document height. Scrolling repaints but never relays out.
func (p *Page) Scroll(delta float64) error {
	if p.state != StateLaidOut {
		return ErrNotLoaded
	}
	maxY := p.tree.Height + 2*layout.VStep - p.viewportHeight
	if maxY < 0 {
		maxY = 0
	}
	p.scrollY += delta
	if p.scrollY > maxY {
		p.scrollY = maxY
	}
	if p.scrollY < 0 {
		p.scrollY = 0
	}
	return nil
}

// DisplayList returns the current paint commands.
func (p *Page) DisplayList() (layout.DisplayList, error) {
	if p.state != StateLaidOut {
		return nil, ErrNotLoaded
	}
	return p.display, nil
}

// DocumentHeight returns the laid-out page height.
func (p *Page) DocumentHeight() (float64, error) {
	if p.state != StateLaidOut {
		return 0, ErrNotLoaded
	}
	return p.tree.Height, nil
}
