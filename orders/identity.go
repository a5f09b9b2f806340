package orders

import (
	"net/http"

	"techzone/utils"
)

// Identity names the party placing an order: an authenticated user or
// a guest. Order creation takes it explicitly so the guest path is a
// visible case, not a swallowed token error.
type Identity struct {
	UserID string
}

func Authenticated(userID string) Identity {
	return Identity{UserID: userID}
}

func Guest() Identity {
	return Identity{}
}

// IdentityFromRequest resolves the caller after OptionalAuth has run.
// No token, or an invalid one, yields a guest.
func IdentityFromRequest(r *http.Request) Identity {
	if userID := utils.GetUserIDFromRequest(r); userID != "" {
		return Authenticated(userID)
	}
	return Guest()
}

func (i Identity) IsGuest() bool {
	return i.UserID == ""
}
