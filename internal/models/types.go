package models

import "time"

// LocalUserID is the sender id carried by every message authored on this
// device. Messages with IsMe set must use it.
const LocalUserID = "me"

type User struct {
	ID       string
	Name     string
	Handle   string
	Avatar   string
	Verified bool
}

type Post struct {
	ID       string
	Author   User
	Content  string
	Image    string
	Likes    int
	Comments int
	Time     string
}

type ChatMessage struct {
	ID        string
	SenderID  string
	Text      string
	Timestamp time.Time
	IsMe      bool
}

type ChatPreview struct {
	ID          string
	User        User
	LastMessage string
	UnreadCount int
	Time        string
	Online      bool
}

type Category string

const (
	CategoryEvent Category = "EVENT"
	CategoryNews  Category = "NEWS"
	CategoryAlert Category = "ALERT"
)

type Announcement struct {
	ID          string
	Title       string
	Category    Category
	Description string
	Date        string
	Image       string
}

// View identifies one of the six top-level screens.
type View int

const (
	ViewFeed View = iota
	ViewChat
	ViewRadar
	ViewSpark
	ViewProfile
	ViewCreate
)

func (v View) String() string {
	switch v {
	case ViewFeed:
		return "FEED"
	case ViewChat:
		return "CHAT"
	case ViewRadar:
		return "RADAR"
	case ViewSpark:
		return "SPARK"
	case ViewProfile:
		return "PROFILE"
	case ViewCreate:
		return "CREATE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether v is one of the six defined views.
func (v View) Valid() bool {
	return v >= ViewFeed && v <= ViewCreate
}
