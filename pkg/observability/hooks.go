// Package observability provides hooks for provisioning and reclaim events.
//
// The hooks keep pkg/provision and pkg/reclaim free of any output concern:
// the command layer registers an implementation at startup (a logger, a
// progress display) and the libraries emit events through the registry.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetProvisionHooks(&myProvisionHooks{})
//	    observability.SetReclaimHooks(&myReclaimHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Provision().OnStepStart(ctx, "interpreter")
//	// ... install python ...
//	observability.Provision().OnStepComplete(ctx, "interpreter", duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Provision Hooks
// =============================================================================

// ProvisionHooks receives events from the provisioner's step runner.
type ProvisionHooks interface {
	OnStepStart(ctx context.Context, step string)
	OnStepComplete(ctx context.Context, step string, duration time.Duration, err error)

	// OnNameCollision records that requested was taken and chosen is used instead.
	OnNameCollision(ctx context.Context, requested, chosen string)
}

// =============================================================================
// Reclaim Hooks
// =============================================================================

// ReclaimHooks receives events from batch deletion.
type ReclaimHooks interface {
	OnDeleteStart(ctx context.Context, name string)
	OnDeleteComplete(ctx context.Context, name string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopProvisionHooks is a no-op implementation of ProvisionHooks.
type NoopProvisionHooks struct{}

func (NoopProvisionHooks) OnStepStart(context.Context, string)                          {}
func (NoopProvisionHooks) OnStepComplete(context.Context, string, time.Duration, error) {}
func (NoopProvisionHooks) OnNameCollision(context.Context, string, string)              {}

// NoopReclaimHooks is a no-op implementation of ReclaimHooks.
type NoopReclaimHooks struct{}

func (NoopReclaimHooks) OnDeleteStart(context.Context, string)                          {}
func (NoopReclaimHooks) OnDeleteComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	provisionHooks ProvisionHooks = NoopProvisionHooks{}
	reclaimHooks   ReclaimHooks   = NoopReclaimHooks{}
	hooksMu        sync.RWMutex
)

// SetProvisionHooks registers custom provisioning hooks.
// This should be called once at application startup.
func SetProvisionHooks(h ProvisionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		provisionHooks = h
	}
}

// SetReclaimHooks registers custom reclaim hooks.
// This should be called once at application startup.
func SetReclaimHooks(h ReclaimHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		reclaimHooks = h
	}
}

// Provision returns the registered provisioning hooks.
func Provision() ProvisionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return provisionHooks
}

// Reclaim returns the registered reclaim hooks.
func Reclaim() ReclaimHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return reclaimHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	provisionHooks = NoopProvisionHooks{}
	reclaimHooks = NoopReclaimHooks{}
}
