package domain

import "time"

// Task is a single to-do item. OwnerID is nil for rows created without a
// token ("legacy" tasks). No foreign key ties a non-nil owner to a live
// user row.
type Task struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Completed bool      `db:"completed" json:"completed"`
	OwnerID   *int64    `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
