package models

import "time"

// Teacher represents a "docente" row. Only the bcrypt digest of the
// password is ever stored.
type Teacher struct {
	ID            string    `db:"id" json:"id"`
	Nome          string    `db:"nome" json:"nome"`
	Identificador string    `db:"identificador" json:"identificador"`
	SenhaHash     string    `db:"senha_hash" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
