package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventNavigationAccepted EventType = "NavigationAccepted"
	EventNavigationDropped  EventType = "NavigationDropped"
	EventTransitionSettled  EventType = "TransitionSettled"
	EventScreenChanged      EventType = "ScreenChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DropReason explains why a navigation request had no effect
type DropReason string

const (
	DropInFlight  DropReason = "in-flight"
	DropBoundary  DropReason = "boundary"
	DropUnchanged DropReason = "unchanged" // jump to the current position
	DropInvalid   DropReason = "invalid"   // jump target outside the domain
)

// NavigationAcceptedEvent is emitted when a controller accepts a request
type NavigationAcceptedEvent struct {
	Screen    string
	Request   string // advance, retreat or jump
	FromKey   string
	ToKey     string
	Direction string
}

func (e NavigationAcceptedEvent) Type() EventType { return EventNavigationAccepted }

// NavigationDroppedEvent is emitted when a request is ignored
type NavigationDroppedEvent struct {
	Screen  string
	Request string
	Key     string
	Reason  DropReason
}

func (e NavigationDroppedEvent) Type() EventType { return EventNavigationDropped }

// TransitionSettledEvent is emitted when the rendering layer finishes a transition
type TransitionSettledEvent struct {
	Screen string
	Key    string
}

func (e TransitionSettledEvent) Type() EventType { return EventTransitionSettled }

// ScreenChangedEvent is emitted when the user routes to another screen
type ScreenChangedEvent struct {
	From string
	To   string
}

func (e ScreenChangedEvent) Type() EventType { return EventScreenChanged }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
