package domain

import (
	"errors"
	"fmt"
)

// User is intentionally storage-agnostic and used across repository and HTTP layers.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// Option is a user formatted for a select input.
type Option struct {
	ID    int64
	Label string
}

// UserGroup is one row of a user's group list.
type UserGroup struct {
	GroupID     int64
	Name        string
	Description string
}

var ErrNotFound = errors.New("user not found")

// OptionLabel renders the select-input label for a user.
func OptionLabel(id int64, firstName, lastName string) string {
	return fmt.Sprintf("# %d -- %s %s", id, firstName, lastName)
}

// DisplayGroups produces the display records for a user's group list,
// applying the fallback name and description. The input rows are not mutated.
func DisplayGroups(rows []UserGroup) []UserGroup {
	out := make([]UserGroup, 0, len(rows))
	for _, g := range rows {
		if g.Name == "" {
			g.Name = "Unnamed"
		}
		if g.Description == "" {
			g.Description = "No Description"
		}
		out = append(out, g)
	}
	return out
}
