//go:build js && wasm

// Package dom binds the effects to a browser document through syscall/js.
package dom

import (
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/melissaiman/portfolio/internal/effects"
)

// RevealedClass is added to a section once it has scrolled into view.
const RevealedClass = "animate-in"

var (
	window   = js.Global()
	document = js.Global().Get("document")
)

// Scheduler runs effects callbacks on the browser event loop.
type Scheduler struct{}

func (Scheduler) Now() time.Time { return time.Now() }

func (Scheduler) AfterFunc(d time.Duration, f func()) func() {
	var cb js.Func
	done := false
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		done = true
		cb.Release()
		f()
		return nil
	})
	handle := window.Call("setTimeout", cb, d.Milliseconds())
	return func() {
		if done {
			return
		}
		done = true
		window.Call("clearTimeout", handle)
		cb.Release()
	}
}

func (Scheduler) NextFrame(f func()) {
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		f()
		return nil
	})
	window.Call("requestAnimationFrame", cb)
}

// Mouse reports window mousemove events in client coordinates.
type Mouse struct{}

func (Mouse) Listen(fn func(effects.Point)) func() {
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		x, y := e.Get("clientX"), e.Get("clientY")
		if x.Type() != js.TypeNumber || y.Type() != js.TypeNumber {
			return nil
		}
		fn(effects.Point{X: x.Float(), Y: y.Float()})
		return nil
	})
	window.Call("addEventListener", "mousemove", cb)
	return func() {
		window.Call("removeEventListener", "mousemove", cb)
		cb.Release()
	}
}

// Overlay writes the spotlight gradient into an element's background.
type Overlay struct {
	el js.Value
}

// NewOverlay wraps the element with the given id.
func NewOverlay(id string) *Overlay {
	return &Overlay{el: document.Call("getElementById", id)}
}

func (o *Overlay) SetBackground(css string) {
	if o.el.IsNull() {
		return
	}
	o.el.Get("style").Set("background", css)
}

// Layer keeps particle spans in a container element, keyed by particle id.
type Layer struct {
	container js.Value
	spans     map[effects.ParticleID]js.Value
}

// NewLayer wraps the container with the given id.
func NewLayer(id string) *Layer {
	return &Layer{
		container: document.Call("getElementById", id),
		spans:     make(map[effects.ParticleID]js.Value),
	}
}

func (l *Layer) Mounted() bool {
	return !l.container.IsNull() && l.container.Get("isConnected").Bool()
}

func (l *Layer) Insert(p effects.Particle) {
	span := document.Call("createElement", "span")
	span.Set("textContent", p.Glyph)
	span.Get("style").Set("cssText", p.Style())
	l.container.Call("appendChild", span)
	l.spans[p.ID] = span
}

func (l *Layer) Animate(id effects.ParticleID, to effects.Transform) {
	span, ok := l.spans[id]
	if !ok {
		return
	}
	style := span.Get("style")
	style.Set("transform", to.CSS())
	style.Set("opacity", to.Opacity)
}

func (l *Layer) Remove(id effects.ParticleID) {
	span, ok := l.spans[id]
	if !ok {
		return
	}
	delete(l.spans, id)
	span.Call("remove")
}

// Observer is an effects.Notifier backed by IntersectionObserver. Sections
// are addressed by element id.
type Observer struct {
	io js.Value
	cb js.Func
}

// NewObserver creates an observer with cfg's threshold and bottom margin.
func NewObserver(cfg effects.Config, handle func([]effects.Entry)) *Observer {
	o := &Observer{}
	o.cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		list := args[0]
		entries := make([]effects.Entry, 0, list.Length())
		for i := 0; i < list.Length(); i++ {
			e := list.Index(i)
			entries = append(entries, effects.Entry{
				Target:       e.Get("target").Get("id").String(),
				Ratio:        e.Get("intersectionRatio").Float(),
				Intersecting: e.Get("isIntersecting").Bool(),
			})
		}
		handle(entries)
		return nil
	})
	opts := map[string]any{
		"threshold":  cfg.RevealThreshold,
		"rootMargin": "0px 0px -" + strconv.FormatFloat(cfg.RevealBottomMargin, 'f', -1, 64) + "px 0px",
	}
	o.io = window.Get("IntersectionObserver").New(o.cb, opts)
	return o
}

func (o *Observer) Observe(id string) {
	if el := document.Call("getElementById", id); !el.IsNull() {
		o.io.Call("observe", el)
	}
}

func (o *Observer) Unobserve(id string) {
	if el := document.Call("getElementById", id); !el.IsNull() {
		o.io.Call("unobserve", el)
	}
}

func (o *Observer) Disconnect() {
	o.io.Call("disconnect")
	o.cb.Release()
}

var generated IDs

// Discover returns the ids of the elements matching selector, assigning ids
// to elements that have none. Generated ids never reuse one already in the
// document.
func Discover(selector string) []string {
	nodes := document.Call("querySelectorAll", selector)
	ids := make([]string, 0, nodes.Length())
	for i := 0; i < nodes.Length(); i++ {
		el := nodes.Index(i)
		id := el.Get("id").String()
		if id == "" {
			id = generated.Next(func(id string) bool {
				return !document.Call("getElementById", id).IsNull()
			})
			el.Set("id", id)
		}
		ids = append(ids, id)
	}
	return ids
}

// SwapEvent is dispatched by htmx once a fragment is in the document.
const SwapEvent = "htmx:afterSwap"

// OnSwap calls fn after every fragment swap until the returned func is
// called.
func OnSwap(fn func()) (stop func()) {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	document.Call("addEventListener", SwapEvent, cb)
	return func() {
		document.Call("removeEventListener", SwapEvent, cb)
		cb.Release()
	}
}

// Mark adds RevealedClass to the element with id. A section that vanished
// in the meantime is ignored.
func Mark(id string) {
	if el := document.Call("getElementById", id); !el.IsNull() {
		el.Get("classList").Call("add", RevealedClass)
	}
}

// RevealSelector reads the comma separated reveal classes the page declares
// on <body data-reveal>.
func RevealSelector() string {
	attr := document.Get("body").Call("getAttribute", "data-reveal")
	if attr.IsNull() {
		return ""
	}
	var parts []string
	for _, c := range strings.Split(attr.String(), ",") {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, "."+c)
		}
	}
	return strings.Join(parts, ", ")
}
