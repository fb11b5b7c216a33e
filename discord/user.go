package discord

import "github.com/WelcomerTeam/Discord-Resources/wirejson"

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// User represents a user on discord. Users nested in other resources are
// copied, never shared between entities.
type User struct {
	Avatar        *string   `json:"avatar"`
	Banner        *string   `json:"banner,omitempty"`
	GlobalName    *string   `json:"global_name"`
	Username      string    `json:"username"`
	Discriminator string    `json:"discriminator"`
	ID            UserID    `json:"id"`
	PublicFlags   UserFlags `json:"public_flags"`
	Bot           bool      `json:"bot"`
	System        bool      `json:"system"`
}

// Used to avoid a marshal loop.
type marshalUser User

func (u User) MarshalJSON() ([]byte, error) {
	// Patch for discriminator
	if u.Discriminator == "" {
		u.Discriminator = "0"
	}

	return wirejson.Marshal(marshalUser(u))
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	c := *u
	c.Avatar = clonePtr(u.Avatar)
	c.Banner = clonePtr(u.Banner)
	c.GlobalName = clonePtr(u.GlobalName)

	return &c
}

func cloneUsers(users []User) []User {
	if users == nil {
		return nil
	}

	out := make([]User, len(users))
	for i := range users {
		out[i] = *users[i].Clone()
	}

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	c := *p

	return &c
}
