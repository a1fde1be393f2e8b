package feed

import "sync"

// ScrollEvent reports how far the list is scrolled, in percent [0, 100].
type ScrollEvent struct {
	Scrolled float64
}

// ScrollSource delivers scroll events to subscribers. The returned function
// ends the subscription.
type ScrollSource interface {
	Subscribe(fn func(ScrollEvent)) (unsubscribe func())
}

// Viewport is a window of Height rows over a list of Total rows. Moving it
// emits a ScrollEvent to every subscriber.
type Viewport struct {
	mu     sync.Mutex
	height int
	top    int
	total  int

	nextID int
	subs   map[int]func(ScrollEvent)
}

func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	return &Viewport{height: height, subs: make(map[int]func(ScrollEvent))}
}

func (v *Viewport) Subscribe(fn func(ScrollEvent)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.subs[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
		})
	}
}

// Subscribers is the number of live subscriptions.
func (v *Viewport) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// SetTotal resizes the underlying list, keeping the window in range.
func (v *Viewport) SetTotal(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.total = n
	v.clamp()
}

// Reset moves the window back to the top of an empty list.
func (v *Viewport) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top, v.total = 0, 0
}

// Window returns the visible row range [start, end).
func (v *Viewport) Window() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.top, min(v.top+v.height, v.total)
}

// Down scrolls n rows towards the end and emits a scroll event.
func (v *Viewport) Down(n int) {
	v.move(n)
}

// Up scrolls n rows towards the start and emits a scroll event.
func (v *Viewport) Up(n int) {
	v.move(-n)
}

func (v *Viewport) move(delta int) {
	v.mu.Lock()
	v.top += delta
	v.clamp()
	ev := ScrollEvent{Scrolled: v.scrolled()}
	subs := make([]func(ScrollEvent), 0, len(v.subs))
	for _, fn := range v.subs {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(ev)
	}
}

func (v *Viewport) clamp() {
	maxTop := max(v.total-v.height, 0)
	v.top = min(max(v.top, 0), maxTop)
}

// scrolled is top / (total - height) * 100; a list that fits on one screen
// counts as fully scrolled.
func (v *Viewport) scrolled() float64 {
	span := v.total - v.height
	if span <= 0 {
		return 100
	}
	return float64(v.top) / float64(span) * 100
}
