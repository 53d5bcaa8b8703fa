package codegurus

import "time"

// Role represents a user's role on the platform.
type Role string

const (
	// RoleAdmin can manage users and approve volunteers.
	RoleAdmin Role = "ADMIN"
	// RoleVolunteer can create skills, sessions and videos once approved.
	RoleVolunteer Role = "VOLUNTEER"
	// RoleParent manages students and enrolls them in sessions.
	RoleParent Role = "PARENT"
)

// SessionStatus represents the lifecycle state of a session. Transitions
// are owned by the backend.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// User represents a platform account tied to a Clerk identity.
type User struct {
	ID        int       `json:"id"`
	ClerkID   string    `json:"clerk_id"`
	Role      Role      `json:"role"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// Parent represents the parent record linked to a User with RoleParent.
// At most one Parent exists per User.
type Parent struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Student represents a child account owned by a Parent.
type Student struct {
	ID        int       `json:"id"`
	ParentID  int       `json:"parent_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Interests string    `json:"interests,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Skill represents a teachable subject.
type Skill struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	CreatedBy   *int       `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Session represents a scheduled learning session run by a volunteer.
type Session struct {
	ID          int           `json:"id"`
	SkillID     int           `json:"skill_id"`
	VolunteerID int           `json:"volunteer_id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Schedule    time.Time     `json:"schedule"`
	MeetingLink string        `json:"meeting_link,omitempty"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// Enrollment links a Student to a Session.
type Enrollment struct {
	ID         int       `json:"id"`
	StudentID  int       `json:"student_id"`
	SessionID  int       `json:"session_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// Video represents a recorded lesson attached to a skill.
type Video struct {
	ID          int        `json:"id"`
	SkillID     int        `json:"skill_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	YoutubeURL  string     `json:"youtube_url"`
	CreatedBy   *int       `json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
