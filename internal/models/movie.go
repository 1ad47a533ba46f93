package models

import (
	"strconv"
	"strings"

	"filmoteca/internal/validator"
)

// NotaMax is the upper bound of the rating scale. Ratings live in [0, NotaMax].
const NotaMax = 5.0

// Movie represents a record in the remote collection. The ID is assigned by
// the server on create and never generated client-side.
type Movie struct {
	ID        int64   `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Diretor   string  `json:"diretor"`
	Nota      float64 `json:"nota"`
}

// MoviePayload is the JSON body submitted on create, before the server has
// assigned an identifier.
type MoviePayload struct {
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Diretor   string  `json:"diretor"`
	Nota      float64 `json:"nota"`
}

// Draft holds the form values for a new movie, mutated per keystroke and
// reset to blank after a successful submission.
type Draft struct {
	Nome      string
	Descricao string
	Diretor   string
	Nota      string
}

// ValidNota reports whether value is acceptable as the rating field's
// content: blank, or a number within [0, NotaMax].
func ValidNota(value string) bool {
	if value == "" {
		return true
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return false
	}

	return n >= 0 && n <= NotaMax
}

// SetNota updates the rating field. Non-numeric or out-of-range input is
// silently ignored, leaving the previous value in place.
func (d *Draft) SetNota(value string) {
	if ValidNota(value) {
		d.Nota = value
	}
}

// Blank reports whether every field of the draft is empty.
func (d Draft) Blank() bool {
	return d.Nome == "" && d.Descricao == "" && d.Diretor == "" && d.Nota == ""
}

// Validate checks that all four fields are non-blank after trimming. The
// numeric coercion of the rating happens in [Draft.SetNota], so presence is
// the only check performed here.
func (d Draft) Validate() *validator.Validator {
	v := validator.New()

	v.Check(strings.TrimSpace(d.Nome) != "", "nome", "must be provided")
	v.Check(strings.TrimSpace(d.Descricao) != "", "descricao", "must be provided")
	v.Check(strings.TrimSpace(d.Diretor) != "", "diretor", "must be provided")
	v.Check(strings.TrimSpace(d.Nota) != "", "nota", "must be provided")

	return v
}

// Payload converts a validated draft into the request body, trimming the
// string fields and coercing the rating to a number.
func (d Draft) Payload() MoviePayload {
	nota, _ := strconv.ParseFloat(strings.TrimSpace(d.Nota), 64)

	return MoviePayload{
		Nome:      strings.TrimSpace(d.Nome),
		Descricao: strings.TrimSpace(d.Descricao),
		Diretor:   strings.TrimSpace(d.Diretor),
		Nota:      nota,
	}
}
