package models

import "time"

// Student represents an "aluno" row. Students authenticate with the
// (matricula, cpf) pair; there is no password.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	CPF       string    `db:"cpf" json:"cpf"`
	Matricula string    `db:"matricula" json:"matricula"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
