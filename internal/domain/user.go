package domain

// User is the cached account profile returned by the mall API.
type User struct {
	ID        int64  `json:"id"`
	Phone     string `json:"phone"`
	Nickname  string `json:"nickname,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Gender    int    `json:"gender"`
	Birthday  string `json:"birthday,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    int    `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// DisplayName prefers the nickname and falls back to the phone number.
func (u User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Phone
}

// ProfilePatch carries the editable profile fields; nil means "leave as is".
type ProfilePatch struct {
	Nickname *string `json:"nickname,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	Gender   *int    `json:"gender,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Apply merges the patch into the user in place.
func (u *User) Apply(patch ProfilePatch) {
	if patch.Nickname != nil {
		u.Nickname = *patch.Nickname
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Gender != nil {
		u.Gender = *patch.Gender
	}
	if patch.Birthday != nil {
		u.Birthday = *patch.Birthday
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
}
