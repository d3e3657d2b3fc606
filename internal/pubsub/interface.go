package pubsub

// PubSubClient defines the interface for publishing and decoding report
// lifecycle events.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
