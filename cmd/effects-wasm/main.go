//go:build js && wasm

// Command effects-wasm runs the page's cursor and scroll effects in the
// browser. Build it with GOOS=js GOARCH=wasm into static/effects.wasm.
package main

import (
	"syscall/js"

	"github.com/melissaiman/portfolio/internal/effects"
	"github.com/melissaiman/portfolio/internal/effects/dom"
)

func main() {
	cfg := effects.DefaultConfig()
	scene := effects.NewScene(cfg, effects.Host{
		Scheduler: dom.Scheduler{},
		Overlay:   dom.NewOverlay("spotlight"),
		Layer:     dom.NewLayer("star-trail"),
		Mark:      dom.Mark,
	})

	var n effects.Notifier
	if selector := dom.RevealSelector(); selector != "" && !js.Global().Get("IntersectionObserver").IsUndefined() {
		n = dom.NewObserver(cfg, scene.Reveal.Handle)
		js.Global().Get("document").Get("documentElement").Get("classList").Call("add", "effects")
		scene.Mount(dom.Mouse{}, n, func() []string { return dom.Discover(selector) })
	} else {
		scene.Mount(dom.Mouse{}, nil, nil)
	}
	// Page sections arrive as htmx fragments.
	stopSwaps := dom.OnSwap(scene.Reveal.Rescan)

	done := make(chan struct{})
	unload := js.FuncOf(func(js.Value, []js.Value) any {
		stopSwaps()
		scene.Unmount()
		close(done)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", unload, map[string]any{"once": true})
	<-done
	unload.Release()
}
