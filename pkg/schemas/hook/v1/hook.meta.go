package hook

import "github.com/lineagehub/lineagehub-events/pkg/schemas/common"

const (
	EventType  = "metadata.hook.v1"
	Exchange   = "metadata.events"
	RoutingKey = "metadata.hook.v1"
)

var NotificationMeta = common.EventMeta{
	EventType:  EventType,
	Exchange:   Exchange,
	RoutingKey: RoutingKey,
}
