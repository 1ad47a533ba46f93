package ui

import (
	"github.com/charmbracelet/bubbles/table"

	"filmoteca/internal/formatter"
	"filmoteca/internal/models"
)

// newMovieTable builds the collection table with a fixed column layout.
func newMovieTable(movies []models.Movie, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Nome", Width: 24},
		{Title: "Diretor", Width: 18},
		{Title: "Nota", Width: 6},
		{Title: "Descrição", Width: 36},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(movieRows(movies)),
		table.WithFocused(true),
	)

	if height > 0 {
		t.SetHeight(height)
	}
	if width > 0 {
		t.SetWidth(width)
	}

	return t
}

// movieRows converts the cached collection into table rows, preserving order.
func movieRows(movies []models.Movie) []table.Row {
	rows := make([]table.Row, len(movies))
	for i, movie := range movies {
		rows[i] = table.Row{
			movie.Nome,
			movie.Diretor,
			formatter.FormatNota(movie.Nota),
			movie.Descricao,
		}
	}
	return rows
}
