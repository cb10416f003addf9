package veloxui

// View is a node of a view hierarchy.
type View interface {
	// FindViewByID returns the descendant view with the given id, or nil.
	FindViewByID(id string) View
}

// ViewGroup is a view that holds child views.
type ViewGroup interface {
	View
}

// LayoutInflater builds a view hierarchy from a layout resource.
type LayoutInflater interface {
	Inflate(layout string, root ViewGroup, attachToRoot bool) View
}

// HasViews is implemented by generated components that can resolve views
// of their content.
type HasViews interface {
	InternalFindViewByID(id string) View
}

// OnViewChangedListener is notified once the content view of a component
// is available.
type OnViewChangedListener interface {
	OnViewChanged(hasViews HasViews)
}

// ViewNotifier dispatches view-change notifications to the listeners that
// registered while it was the current notifier.
type ViewNotifier struct {
	listeners []OnViewChangedListener
}

// NewViewNotifier returns an empty notifier.
func NewViewNotifier() *ViewNotifier {
	return &ViewNotifier{}
}

var currentNotifier *ViewNotifier

// ReplaceNotifier makes n the current notifier and returns the previous one.
func ReplaceNotifier(n *ViewNotifier) *ViewNotifier {
	previous := currentNotifier
	currentNotifier = n
	return previous
}

// RegisterOnViewChangedListener registers l with the current notifier.
// It is a no-op when no notifier is current.
func RegisterOnViewChangedListener(l OnViewChangedListener) {
	if currentNotifier != nil {
		currentNotifier.listeners = append(currentNotifier.listeners, l)
	}
}

// NotifyViewChanged calls every registered listener with hasViews.
func (n *ViewNotifier) NotifyViewChanged(hasViews HasViews) {
	if n == nil {
		return
	}
	for _, l := range n.listeners {
		l.OnViewChanged(hasViews)
	}
}
