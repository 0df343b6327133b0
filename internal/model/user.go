package model

// Result is the success/message pair the backend returns from mutating calls.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// User is a registered shopper.
type User struct {
	ID         int    `json:"user_id"`
	Email      string `json:"email,omitempty"`
	FirstName  string `json:"firstname"`
	LastName   string `json:"lastname"`
	JoinedDate string `json:"joined_date,omitempty"`
}

// FullName joins first and last name the way the header displays it.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the backend response to a login attempt.
type LoginResult struct {
	Result
	User   *User `json:"user,omitempty"`
	CartID int   `json:"cartID,omitempty"`
}

// RegisterRequest holds the fields needed to create an account.
type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Password  string `json:"password"`
}

// ProfileUpdate changes a user's display name.
type ProfileUpdate struct {
	UserID    int    `json:"user_id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// PasswordUpdate changes a user's password.
type PasswordUpdate struct {
	UserID   int    `json:"user_id"`
	Password string `json:"password"`
}

// FollowRequest links a follower to the user they follow.
type FollowRequest struct {
	FollowerID  int `json:"follower_id"`
	FollowingID int `json:"following_id"`
}

// Session is the per-client state that survives between requests: who is
// logged in, which cart they own and their last computed TDEE.
type Session struct {
	ID     string `json:"session_id"`
	UserID int    `json:"user_id,omitempty"`
	CartID int    `json:"cart_id,omitempty"`
	TDEE   int    `json:"tdee,omitempty"`
}

// LoggedIn reports whether a user is attached to the session.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserID != 0
}
