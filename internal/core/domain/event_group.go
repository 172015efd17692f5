package domain

import "strings"

// EventGroup is the root discriminator of an inbound Karla webhook.
type EventGroup string

// EventNamePrefix prefixes every platform event derived from a webhook.
const EventNamePrefix = "karla."

// Shipment family.
const (
	ShipmentLabelCreated                      EventGroup = "shipment_label_created"
	ShipmentInTransit                         EventGroup = "shipment_in_transit"
	ShipmentOutForDelivery                    EventGroup = "shipment_out_for_delivery"
	ShipmentAttemptedDelivery                 EventGroup = "shipment_attempted_delivery"
	ShipmentAvailableForPickup                EventGroup = "shipment_available_for_pickup"
	ShipmentDelivered                         EventGroup = "shipment_delivered"
	ShipmentDelayed                           EventGroup = "shipment_delayed"
	ShipmentReturnedToSender                  EventGroup = "shipment_returned_to_sender"
	ShipmentLost                              EventGroup = "shipment_lost"
	ShipmentDamaged                           EventGroup = "shipment_damaged"
	ShipmentDeliveryFailed                    EventGroup = "shipment_delivery_failed"
	ShipmentDeliveryFailedAddressIssue        EventGroup = "shipment_delivery_failed_address_issue"
	ShipmentDeliveryFailedForwardedParcelShop EventGroup = "shipment_delivery_failed_forwarded_to_parcel_shop"
	ShipmentDeliveryFailedRecipientAbsent     EventGroup = "shipment_delivery_failed_recipient_unavailable"
	ShipmentDeliveryFailedRefused             EventGroup = "shipment_delivery_failed_refused"
	ShipmentException                         EventGroup = "shipment_exception"
)

// Claim family.
const (
	ClaimCreated        EventGroup = "claim_created"
	ClaimUpdated        EventGroup = "claim_updated"
	ClaimInReview       EventGroup = "claim_in_review"
	ClaimApproved       EventGroup = "claim_approved"
	ClaimRejected       EventGroup = "claim_rejected"
	ClaimRefundIssued   EventGroup = "claim_refund_issued"
	ClaimReorderCreated EventGroup = "claim_reorder_created"
	ClaimClosed         EventGroup = "claim_closed"
)

// KnownEventGroups lists every group the connector dispatches, in a stable order.
var KnownEventGroups = []EventGroup{
	ShipmentLabelCreated,
	ShipmentInTransit,
	ShipmentOutForDelivery,
	ShipmentAttemptedDelivery,
	ShipmentAvailableForPickup,
	ShipmentDelivered,
	ShipmentDelayed,
	ShipmentReturnedToSender,
	ShipmentLost,
	ShipmentDamaged,
	ShipmentDeliveryFailed,
	ShipmentDeliveryFailedAddressIssue,
	ShipmentDeliveryFailedForwardedParcelShop,
	ShipmentDeliveryFailedRecipientAbsent,
	ShipmentDeliveryFailedRefused,
	ShipmentException,
	ClaimCreated,
	ClaimUpdated,
	ClaimInReview,
	ClaimApproved,
	ClaimRejected,
	ClaimRefundIssued,
	ClaimReorderCreated,
	ClaimClosed,
}

var knownEventGroups = func() map[EventGroup]struct{} {
	m := make(map[EventGroup]struct{}, len(KnownEventGroups))
	for _, g := range KnownEventGroups {
		m[g] = struct{}{}
	}
	return m
}()

// IsKnown reports whether g belongs to the enumerated set.
func (g EventGroup) IsKnown() bool {
	_, ok := knownEventGroups[g]
	return ok
}

// EventName maps the group to its platform event name. Only the first
// underscore becomes a dot: shipment_delivery_failed_refused maps to
// karla.shipment.delivery_failed_refused.
func (g EventGroup) EventName() string {
	family, rest, found := strings.Cut(string(g), "_")
	if !found {
		return EventNamePrefix + family
	}
	return EventNamePrefix + family + "." + rest
}

// Family returns the part before the first underscore ("shipment", "claim").
func (g EventGroup) Family() string {
	family, _, _ := strings.Cut(string(g), "_")
	return family
}
