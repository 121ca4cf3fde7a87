package effects

import "sort"

// Entry is one visibility change reported by a Notifier.
type Entry struct {
	Target       string
	Ratio        float64
	Intersecting bool
}

// Notifier is any viewport intersection source. Entries are delivered to the
// callback the notifier was built with, on the host's UI thread.
type Notifier interface {
	Observe(target string)
	Unobserve(target string)
	// Disconnect stops all observation. No entries are delivered afterwards.
	Disconnect()
}

// RevealTarget is a marked page section. Revealed flips once and never back.
type RevealTarget struct {
	ID       string
	Revealed bool
}

// RevealController applies the one-time reveal marker to sections as they
// scroll into view.
type RevealController struct {
	cfg   Config
	sched Scheduler
	mark  func(target string)

	notifier   Notifier
	discover   func() []string
	cancel     func()
	mounted    bool
	discovered bool
	targets    map[string]*RevealTarget
}

// NewRevealController returns a controller that calls mark once per revealed
// section.
func NewRevealController(cfg Config, sched Scheduler, mark func(target string)) *RevealController {
	return &RevealController{
		cfg:     cfg,
		sched:   sched,
		mark:    mark,
		targets: make(map[string]*RevealTarget),
	}
}

// Mount starts observing. Sections are discovered after RevealDelay so the
// host's layout has settled; every discovered section starts pending.
func (c *RevealController) Mount(n Notifier, discover func() []string) {
	c.notifier = n
	c.discover = discover
	c.mounted = true
	c.cancel = c.sched.AfterFunc(c.cfg.RevealDelay, func() {
		c.discovered = true
		c.scan()
	})
}

// Rescan observes sections added to the page since discovery, such as
// fragments swapped in after load. Before the initial discovery it does
// nothing; that discovery picks them up.
func (c *RevealController) Rescan() {
	if c.discovered {
		c.scan()
	}
}

func (c *RevealController) scan() {
	if !c.mounted || c.discover == nil {
		return
	}
	for _, id := range c.discover() {
		if _, ok := c.targets[id]; ok {
			continue
		}
		c.targets[id] = &RevealTarget{ID: id}
		c.notifier.Observe(id)
	}
}

// Handle consumes notifier entries.
func (c *RevealController) Handle(entries []Entry) {
	if !c.mounted {
		return
	}
	for _, e := range entries {
		t, ok := c.targets[e.Target]
		if !ok || t.Revealed || !e.Intersecting {
			continue
		}
		t.Revealed = true
		if c.mark != nil {
			c.mark(t.ID)
		}
		c.notifier.Unobserve(t.ID)
	}
}

// Unmount releases the notifier and any pending discovery.
func (c *RevealController) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	if c.cancel != nil {
		c.cancel()
	}
	c.notifier.Disconnect()
}

// Revealed reports whether target has been revealed.
func (c *RevealController) Revealed(target string) bool {
	t, ok := c.targets[target]
	return ok && t.Revealed
}

// Targets returns the discovered sections sorted by id.
func (c *RevealController) Targets() []RevealTarget {
	out := make([]RevealTarget, 0, len(c.targets))
	for _, t := range c.targets {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
