// Package service runs the long-lived subsystems around the game (audio
// output, the history archive) through one Init/Start/Stop lifecycle.
package service

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction with its settings
//  2. Init() - acquire resources; optional backends degrade instead of failing
//  3. Start() - begin operation
//  4. [runtime operation]
//  5. Stop() - flush state and release resources; must be idempotent
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error
	Stop() error
}
