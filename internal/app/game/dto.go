package game

import "zooverse/internal/domain/zoo"

// Snapshot is the observe-style view of the running world.
type Snapshot struct {
	World   zoo.WorldState `json:"world"`
	Running bool           `json:"running"`
}

// ExploreResult reports one safari roll. Animal is set when a species was
// found; otherwise RewardKind/Amount carry the consolation prize.
type ExploreResult struct {
	Message    string         `json:"message"`
	Animal     *zoo.Animal    `json:"animal,omitempty"`
	RewardKind zoo.RewardKind `json:"rewardKind,omitempty"`
	Amount     int            `json:"amount,omitempty"`
}

// Settings carries partial management updates; nil fields are untouched.
type Settings struct {
	ZooName      *string  `json:"zooName,omitempty"`
	TicketPrice  *float64 `json:"ticketPrice,omitempty"`
	IsDarkMode   *bool    `json:"isDarkMode,omitempty"`
	SoundEnabled *bool    `json:"soundEnabled,omitempty"`
	MusicEnabled *bool    `json:"musicEnabled,omitempty"`
}
