package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "ADMIN"
)

type User struct {
	UserID    string    `json:"userid" bson:"userid"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash
	Role      string    `json:"role" bson:"role"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	LastLogin time.Time `json:"last_login" bson:"last_login"`
}

// SessionUser is the identity view returned with a token on
// login/register. The server stays authoritative; this is a cache for
// the client.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// ProfileResponse trims the user document down to the profile screen's
// fields so the password hash can never leak.
type ProfileResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (u User) Session() SessionUser {
	return SessionUser{ID: u.UserID, Email: u.Email, Name: u.Name, Role: u.Role}
}

func (u User) Profile() ProfileResponse {
	return ProfileResponse{Name: u.Name, Email: u.Email, Phone: u.Phone, Address: u.Address}
}
