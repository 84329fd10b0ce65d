package entity

import "time"

// DeviceStatus is the connectivity state reported by the agent bridge
type DeviceStatus string

// Device statuses
const (
	DeviceOnline  DeviceStatus = "online"
	DeviceOffline DeviceStatus = "offline"
	DeviceBusy    DeviceStatus = "busy"
)

// Device is an Android device controlled through the agent bridge
type Device struct {
	ID         uint64
	ExternalID string // Identifier assigned by the bridge
	UserID     uint64
	Name       string
	Model      string
	Status     DeviceStatus
	LastSeenAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeDeviceStatus maps a bridge status string to a known status
func NormalizeDeviceStatus(s string) DeviceStatus {
	switch DeviceStatus(s) {
	case DeviceOnline, DeviceBusy:
		return DeviceStatus(s)
	}
	return DeviceOffline
}
