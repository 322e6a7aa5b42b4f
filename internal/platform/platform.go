// Package platform owns the board-specific collaborators: the debug
// console and the two clock readings. Exactly one target file is built.
package platform

// DeviceID is the embedded-config key for the board this binary targets.
func DeviceID() string { return deviceID }
