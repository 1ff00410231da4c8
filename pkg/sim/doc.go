// Package sim provides a simulated MAC/PHY driver library for hosts without
// Ethernet silicon.
//
// Library implements driver.Library. Links it installs post driver events on
// the system loop like a real driver: EventStart and EventStop from
// Start/Stop, EventConnected and EventDisconnected when the carrier changes.
// The carrier is driven with SetCarrier, or comes up on Start when
// LibraryConfig.AutoCarrier is set.
//
// Two links can be cabled together with Connect; frames transmitted on one
// are delivered to the receiver of the other. Frames sent on an unconnected
// link are dropped.
package sim
