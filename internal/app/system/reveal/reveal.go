// Package reveal models the scroll-triggered reveal wrapper used on the
// public pages.
//
// Content wrapped by a reveal container starts hidden (transparent and
// offset) and becomes visible the first time at least Threshold of the
// container is inside the viewport. The transition happens once; later
// visibility changes are ignored. In the browser the transition is driven by
// public/js/reveal.js, which reads the data attributes produced by
// Config.Attrs, marks the element data-reveal-state="visible" and unobserves
// it after the first trigger.
package reveal

import (
	"fmt"
	"html/template"
	"strconv"
	"time"
)

// Default transition settings.
const (
	DefaultThreshold = 0.2
	DefaultDuration  = 800 * time.Millisecond
	DefaultEasing    = "ease-out"
)

// Config describes how a reveal container behaves.
type Config struct {
	Threshold float64       // visible fraction that triggers the reveal, 0..1
	Duration  time.Duration // transition length
	Easing    string        // CSS timing function
}

// Default returns the site-wide reveal settings.
func Default() Config {
	return Config{
		Threshold: DefaultThreshold,
		Duration:  DefaultDuration,
		Easing:    DefaultEasing,
	}
}

// normalized fills zero fields with defaults and clamps the threshold.
func (c Config) normalized() Config {
	if c.Threshold <= 0 {
		c.Threshold = DefaultThreshold
	}
	if c.Threshold > 1 {
		c.Threshold = 1
	}
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Easing == "" {
		c.Easing = DefaultEasing
	}
	return c
}

// Attrs renders the container attributes read by reveal.js. The element
// starts with the "reveal-hidden" class; the script swaps it for
// "reveal-visible" once.
func (c Config) Attrs() template.HTMLAttr {
	c = c.normalized()
	return template.HTMLAttr(fmt.Sprintf(
		`class="reveal reveal-hidden" data-reveal data-reveal-once="true" data-reveal-state="hidden" data-reveal-threshold="%s" data-reveal-duration="%d" data-reveal-easing="%s"`,
		strconv.FormatFloat(c.Threshold, 'f', -1, 64),
		c.Duration.Milliseconds(),
		template.HTMLEscapeString(c.Easing),
	))
}
