package elastic

// Host is the narrow capability interface the engine requires from a
// scrollable list. The engine never inherits from or renders the list;
// a thin adapter implements Host over any concrete list widget.
//
// Implementations are queried on the engine context only and must be
// cheap: several methods are consulted on every move event.
type Host interface {
	// IsAtTop reports whether the viewport sits at the logical top of
	// the content.
	IsAtTop() bool
	// IsAtBottom reports whether the viewport sits at the logical
	// bottom of the content.
	IsAtBottom() bool

	// ItemCount returns the total number of list items.
	ItemCount() int
	// VisibleItemCount returns how many items are currently within the
	// viewport. The footer is only revealed when the content overflows
	// the viewport, i.e. VisibleItemCount() < ItemCount().
	VisibleItemCount() int

	// HeaderSlots returns how many foreign decorations are currently
	// attached ahead of the first item. The update header refuses to
	// attach unless it can occupy the first slot.
	HeaderSlots() int

	// AttachHeader and DetachHeader bind the update header to the
	// first decoration slot.
	AttachHeader()
	DetachHeader()
	// AttachFooter and DetachFooter bind the load footer to the last
	// decoration slot.
	AttachFooter()
	DetachFooter()

	// IsHeaderShowing reports whether the update header currently
	// occupies the first visible slot.
	IsHeaderShowing() bool
	// IsFooterShowing reports whether the load footer currently
	// occupies the last visible slot.
	IsFooterShowing() bool

	// RevealFooter force-scrolls the list so the growing footer slot
	// stays on screen.
	RevealFooter()
}

// ContentView is the measured content a host places inside a
// decoration. Its height becomes the decoration's minimum height: the
// reveal distance past which a release fires the action, and the
// settled height while the action runs.
type ContentView interface {
	Height() float64
}

// FixedContent returns a ContentView with a constant measured height.
func FixedContent(height float64) ContentView {
	return fixedContent(height)
}

type fixedContent float64

func (f fixedContent) Height() float64 { return float64(f) }

// Executor serializes engine work onto a single logical context.
// *runloop.Loop implements it; tests may run tasks inline.
type Executor interface {
	Post(fn func()) bool
}

// directExecutor runs tasks inline. It is the fallback when no
// executor is supplied and is only safe when every caller already runs
// on one goroutine.
type directExecutor struct{}

func (directExecutor) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	fn()
	return true
}
