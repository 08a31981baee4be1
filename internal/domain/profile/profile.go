package profile

import (
	"context"
	"errors"
)

const UnknownDisplayName = "Unknown"

var ErrNotFound = errors.New("profile not found")

// Profile is the public display identity of a user. It decorates read
// responses and is never stored on a job.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}

// Unknown is the placeholder used when a profile cannot be resolved.
func Unknown(id string) Profile {
	return Profile{ID: id, DisplayName: UnknownDisplayName}
}

// Directory resolves user ids to profiles.
type Directory interface {
	Lookup(ctx context.Context, userID string) (Profile, error)
}
