package model

import (
	"time"
)

type UserProfile struct {
	ID        int64     `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Team      string    `json:"team,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	JoinDate  time.Time `json:"joinDate,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// TeamSummary is the admin roster view of one team.
type TeamSummary struct {
	Team        string   `json:"team"`
	MemberCount int      `json:"memberCount"`
	Members     []string `json:"members"`
}

// ApiToken grants programmatic step entry. The token value is only
// returned once, on creation.
type ApiToken struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"userId"`
	Name      string     `json:"name"`
	Token     string     `json:"token,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`
}

// AuditEntry records one use of an API token.
type AuditEntry struct {
	ID        int64     `json:"id"`
	TokenID   int64     `json:"tokenId"`
	UserID    int64     `json:"userId"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}
