// Package utils provides small conversion helpers shared by the control plane.
// It mainly exists to read loosely typed values, such as ports persisted as
// strings by older versions of the configuration file.
package utils
