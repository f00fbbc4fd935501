package eventbus

import "log"

// LogEvents writes every event to the standard logger
func LogEvents(b EventBus) func() {
	return b.SubscribeAll(func(e DomainEvent) {
		switch ev := e.(type) {
		case NavigationAcceptedEvent:
			log.Printf("%s: %s %s -> %s (%s)", ev.Screen, ev.Request, ev.FromKey, ev.ToKey, ev.Direction)
		case NavigationDroppedEvent:
			log.Printf("%s: %s dropped at %s (%s)", ev.Screen, ev.Request, ev.Key, ev.Reason)
		case TransitionSettledEvent:
			log.Printf("%s: settled at %s", ev.Screen, ev.Key)
		case ScreenChangedEvent:
			log.Printf("Screen changed: %s -> %s", ev.From, ev.To)
		default:
			log.Printf("EventBus: %s", e.Type())
		}
	})
}
