package client

import (
	"strings"
	"sync"
	"time"

	"miniecom_backend/models"
)

// DefaultDebounce is how long the search box waits after the last keystroke
// before filtering.
const DefaultDebounce = 500 * time.Millisecond

// FilterProducts filters the full product set in memory by case-insensitive
// substring match on the title. The storefront also matches descriptions;
// the dashboard does not. An empty query returns the input unchanged.
func FilterProducts(products []models.Product, query string, includeDescription bool) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), query) {
			filtered = append(filtered, p)
			continue
		}
		if includeDescription && strings.Contains(strings.ToLower(p.Description), query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Debouncer coalesces rapid calls: only the last call within the quiet
// period fires.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given delay; delay <= 0 uses
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Do schedules fn after the quiet period, replacing any pending call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
