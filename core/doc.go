// Package core defines the shared types used across the relaylog pipeline.
//
// It provides the Record type that represents a single delivered log event
// and the Descriptor capability that log-kind values implement to supply
// their level, name, and color.
//
// Record is a value type with no pointers back into producer state, so it
// can be copied across the delivery queue and handed to handlers without
// any sharing between goroutines.
package core
