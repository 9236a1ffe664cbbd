package client

import (
	"sort"
	"sync"

	"miniecom_backend/models"
)

// CartItem is one line of the cart. Title, price and image are a snapshot of
// the product at add time.
type CartItem struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
	Quantity int     `json:"quantity"`
}

// CartStore persists the whole cart record. Implementations overwrite the
// full record on every save; last write wins.
type CartStore interface {
	Load() (map[uint]CartItem, error)
	Save(items map[uint]CartItem) error
}

// Cart holds the selected products. Lines are unique by product id and a
// quantity that would drop to zero removes the line. Every mutation is
// persisted through the store and announced to subscribers so other views
// can re-read.
type Cart struct {
	mu    sync.Mutex
	items map[uint]CartItem
	store CartStore
	subs  []chan struct{}
}

// NewCart loads the persisted record through store. A nil store keeps the
// cart purely in memory.
func NewCart(store CartStore) (*Cart, error) {
	c := &Cart{items: make(map[uint]CartItem), store: store}
	if store != nil {
		items, err := store.Load()
		if err != nil {
			return nil, err
		}
		if items != nil {
			c.items = items
		}
	}
	return c, nil
}

// Add puts quantity units of the product in the cart, merging with an
// existing line for the same id. quantity < 1 counts as 1.
func (c *Cart) Add(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	if item, ok := c.items[p.ID]; ok {
		item.Quantity += quantity
		c.items[p.ID] = item
	} else {
		c.items[p.ID] = CartItem{
			ID:       p.ID,
			Title:    p.Title,
			Price:    p.Price,
			ImageURL: p.ImageURL,
			Quantity: quantity,
		}
	}
	c.mu.Unlock()

	c.persistAndNotify()
}

// SetQuantity changes a line's quantity; zero or less removes the line.
// Unknown ids are ignored.
func (c *Cart) SetQuantity(id uint, quantity int) {
	c.mu.Lock()
	item, ok := c.items[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	if quantity <= 0 {
		delete(c.items, id)
	} else {
		item.Quantity = quantity
		c.items[id] = item
	}
	c.mu.Unlock()

	c.persistAndNotify()
}

// Remove deletes the line for id if present.
func (c *Cart) Remove(id uint) {
	c.mu.Lock()
	delete(c.items, id)
	c.mu.Unlock()

	c.persistAndNotify()
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = make(map[uint]CartItem)
	c.mu.Unlock()

	c.persistAndNotify()
}

// Items returns the cart lines ordered by product id.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]CartItem, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities over all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Subscribe returns a channel that receives a signal after every mutation.
// Notifications are dropped, not queued, when the subscriber lags.
func (c *Cart) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

func (c *Cart) persistAndNotify() {
	c.mu.Lock()
	var snapshot map[uint]CartItem
	if c.store != nil {
		snapshot = make(map[uint]CartItem, len(c.items))
		for id, item := range c.items {
			snapshot[id] = item
		}
	}
	subs := c.subs
	c.mu.Unlock()

	if c.store != nil {
		// Persistence is a side effect; a failed save does not roll back
		// the in-memory cart.
		_ = c.store.Save(snapshot)
	}

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
