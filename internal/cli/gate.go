package cli

import (
	"errors"
	"fmt"

	codegurus "github.com/lalitgarg2005/CodeGurus"
)

// pendingNotice is shown to unapproved volunteers wherever a creation
// action is denied.
const pendingNotice = "your volunteer account is pending admin approval; you can create skills and sessions once approved"

// requireRole rejects callers whose role is not in the allowed set.
func requireRole(user *codegurus.User, allowed ...codegurus.Role) error {
	for _, role := range allowed {
		if user.Role == role {
			return nil
		}
	}
	return fmt.Errorf("this action requires role %s; you are %s", rolesString(allowed), user.Role)
}

// requireCreator rejects callers who may not create skills, sessions or
// videos: only admins and approved volunteers qualify.
func requireCreator(user *codegurus.User) error {
	if user.Role == codegurus.RoleAdmin {
		return nil
	}
	if user.Role == codegurus.RoleVolunteer {
		if !user.Approved {
			return errors.New(pendingNotice)
		}
		return nil
	}
	return fmt.Errorf("this action requires an admin or approved volunteer; you are %s", user.Role)
}

func rolesString(roles []codegurus.Role) string {
	switch len(roles) {
	case 0:
		return ""
	case 1:
		return string(roles[0])
	default:
		s := string(roles[0])
		for _, role := range roles[1:] {
			s += " or " + string(role)
		}
		return s
	}
}
