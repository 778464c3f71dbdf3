// Package store talks to the macOS reminder database on behalf of the UI.
// The Script implementation shells out to osascript; Memory backs demo mode
// and tests. The UI core only ever sees the Store interface.
package store

import (
	"context"

	"github.com/remtui/rem/internal/reminders"
)

// Permission mirrors the EventKit authorization states for reminder access.
type Permission int

const (
	PermissionNotDetermined Permission = iota
	PermissionRestricted
	PermissionDenied
	PermissionAuthorized
)

// String returns a user-facing label for the permission state.
func (p Permission) String() string {
	switch p {
	case PermissionAuthorized:
		return "authorized"
	case PermissionDenied:
		return "denied"
	case PermissionRestricted:
		return "restricted"
	default:
		return "not determined"
	}
}

// Store is the external collaborator that owns all real reminder data. Every
// method may block on the OS; callers pass a context for cancellation.
type Store interface {
	Collections(ctx context.Context) ([]reminders.Collection, error)
	Items(ctx context.Context, collectionID string) ([]reminders.Item, error)
	AllItems(ctx context.Context) ([]reminders.GlobalEntry, error)
	Toggle(ctx context.Context, itemID string) error
	Delete(ctx context.Context, itemID string) error
	Create(ctx context.Context, item reminders.NewItem) error
	Permission(ctx context.Context) (Permission, error)
}
