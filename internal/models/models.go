package models

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// UserWithConnections - строка справочника пользователей, connections считается при чтении
type UserWithConnections struct {
	ID          int64  `json:"id" db:"id"`
	Username    string `json:"username" db:"username"`
	Connections int64  `json:"connections" db:"connections"`
}

type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Text      string    `json:"content" db:"text"`
	Media     *string   `json:"media" db:"media"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedPost - пост в ленте вместе с автором и количеством лайков
type FeedPost struct {
	ID         int64   `json:"id" db:"id"`
	UserID     int64   `json:"user_id" db:"user_id"`
	Content    string  `json:"content" db:"content"`
	Media      *string `json:"media" db:"media"`
	Username   string  `json:"username" db:"username"`
	LikesCount int64   `json:"likes_count" db:"likes_count"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"post_id" db:"post_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Text      string    `json:"content" db:"text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FeedComment - комментарий вместе с автором и количеством лайков
type FeedComment struct {
	ID         int64  `json:"id" db:"id"`
	PostID     int64  `json:"post_id" db:"post_id"`
	UserID     int64  `json:"user_id" db:"user_id"`
	Content    string `json:"content" db:"content"`
	Username   string `json:"username" db:"username"`
	LikesCount int64  `json:"likes_count" db:"likes_count"`
}

type Message struct {
	ID           int64     `json:"id" db:"id"`
	FromID       int64     `json:"from_id" db:"from_id"`
	ToID         int64     `json:"to_id" db:"to_id"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	FromUsername string    `json:"from_username" db:"from_username"`
	ToUsername   string    `json:"to_username" db:"to_username"`
}

type Session struct {
	ID        string    `json:"sessionId" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
