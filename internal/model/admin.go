package model

import "time"

type Admin struct {
	ID           string    `db:"id" bson:"_id" json:"_id"`
	Email        string    `db:"email" bson:"email" json:"email"`
	PasswordHash string    `db:"password_hash" bson:"password" json:"-"`
	Name         string    `db:"name" bson:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

// AdminPatch lists the self-service fields of an admin account.
// The password hash is deliberately absent; it changes only through
// the password endpoint.
type AdminPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
