package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

type Group struct {
	ID           int64
	Name         string
	Description  string
	ActionToTake string
	ShareCode    string
	ActivityID   int64 // 0 when the group has no activity
}

type Member struct {
	ID        int64
	FirstName string
	LastName  string
}

// DetailRow is one row of the group-detail join; the group columns repeat on
// every member row.
type DetailRow struct {
	UserID       int64
	FirstName    string
	LastName     string
	Name         string
	Description  string
	ActionToTake string
	ShareCode    string
	ActivityID   int64
}

// Detail is the group page aggregate. Ref is the id or share code the page
// was requested with, so links and forms keep using the caller's key.
type Detail struct {
	Ref          string
	Name         string
	Description  string
	ActionToTake string
	ShareCode    string
	ActivityID   int64
	ActivityName string
	Members      []Member
	OneMember    bool
	Invalid      string
}

// Membership pairs a user with one of their groups; GroupID is 0 for users
// that belong to no group.
type Membership struct {
	UserID  int64
	GroupID int64
}

var ErrNotFound = errors.New("group not found")

const shareCodeBytes = 18

// NewShareCode returns a fresh unguessable lookup token, 36 hex characters.
// Uniqueness is probabilistic; the token is never regenerated.
func NewShareCode() (string, error) {
	b := make([]byte, shareCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// AssembleDetail builds the group page aggregate from the member join rows.
// A group resolving to zero rows yields nil; callers render not-found.
func AssembleDetail(ref string, rows []DetailRow) *Detail {
	if len(rows) == 0 {
		return nil
	}

	members := make([]Member, 0, len(rows))
	for _, row := range rows {
		members = append(members, Member{ID: row.UserID, FirstName: row.FirstName, LastName: row.LastName})
	}

	first := rows[0]
	d := &Detail{
		Ref:          ref,
		Name:         first.Name,
		Description:  first.Description,
		ActionToTake: first.ActionToTake,
		ShareCode:    first.ShareCode,
		ActivityID:   first.ActivityID,
		Members:      members,
		OneMember:    len(rows) == 1,
	}
	if d.Name == "" {
		d.Name = "Unnamed"
	}
	if d.Description == "" {
		d.Description = "No description"
	}
	return d
}
