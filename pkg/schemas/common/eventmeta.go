package common

type EventMeta struct {
	EventType  string // e.g. "metadata.hook.v1"
	Exchange   string // e.g. "metadata.events"
	RoutingKey string // e.g. "metadata.hook.v1"
}
