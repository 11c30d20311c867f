package member

import "time"

// Member is a registered customer entitled to member pricing. The code is
// assigned by the store from the row's serial id ("M" + zero-padded id).
type Member struct {
	ID       int64     `json:"id"`
	Code     string    `json:"code"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email,omitempty"`
	Address  string    `json:"address,omitempty"`
	JoinDate time.Time `json:"join_date"`
	IsActive bool      `json:"is_active"`
}

// UpsertMemberRequest is the payload for creating or updating a member.
type UpsertMemberRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
