package model

import "time"

// User represents an application user record as stored in the
// `users` table. Username and email both carry unique indexes;
// uniqueness is enforced by the database, not only by handler
// pre-checks. The json tags are omitted here because these structs
// are used internally by the repository layer; handlers define
// separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique display name (max 50 chars).
//  Email        – unique email address (max 255 chars).
//  PasswordHash – submitted password, stored verbatim (see DESIGN.md).
//  Role         – role name, defaults to "user" (max 20 chars).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
