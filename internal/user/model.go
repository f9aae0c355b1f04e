package user

// UserType selects which naming rule applies when an email is computed.
type UserType string

const (
	TypeInternal UserType = "internal"
	TypeExternal UserType = "external"
)

// User mirrors the record shape of the external user API. Email is a
// pointer because the upstream returns null for users without an address.
type User struct {
	ID        int64    `json:"id" validate:"required"`
	FirstName string   `json:"firstname" validate:"required"`
	LastName  string   `json:"lastname" validate:"required"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Type      UserType `json:"type" validate:"required,oneof=internal external"`
}

// HasEmail reports whether the user already owns an address. An empty
// string counts as missing, same as null.
func (u User) HasEmail() bool {
	return u.Email != nil && *u.Email != ""
}

// EmailUpdateError records one user whose email could not be assigned,
// either because the computed address collided or the upstream rejected
// the update. Failed assignments are never retried.
type EmailUpdateError struct {
	UserID         int64  `json:"userId"`
	AttemptedEmail string `json:"attemptedEmail"`
	Error          string `json:"error"`
}

// UpdateResult aggregates one full pass of the update workflow.
type UpdateResult struct {
	UpdatedUsers []User             `json:"updated_users"`
	Errors       []EmailUpdateError `json:"errors"`
}
