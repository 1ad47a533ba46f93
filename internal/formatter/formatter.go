// package formatter provides functions to export the fetched movie collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"filmoteca/internal/models"
)

// ExportToCSV converts a movie collection to CSV format with columns: ID, Nome, Diretor, Nota, Descricao
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Nome", "Diretor", "Nota", "Descricao"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Nome,
			movie.Diretor,
			strconv.FormatFloat(movie.Nota, 'f', -1, 64),
			movie.Descricao,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a movie collection to a Markdown table.
func ExportToMarkdown(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Filmes\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(movies)))

	buf.WriteString("| Nome | Diretor | Nota | Descrição |\n")
	buf.WriteString("| --- | --- | --- | --- |\n")
	for _, movie := range movies {
		buf.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			movie.Nome, movie.Diretor, FormatNota(movie.Nota), movie.Descricao))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a movie collection to a numbered plain text listing.
func ExportToText(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Filmes (%d)\n\n", len(movies)))
	for i, movie := range movies {
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n", i+1, movie.Nome, movie.Diretor, FormatNota(movie.Nota)))
		if movie.Descricao != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", movie.Descricao))
		}
	}

	return buf.Bytes(), nil
}

// FormatNota renders a rating as "n/5", trimming trailing zeros.
func FormatNota(nota float64) string {
	return strconv.FormatFloat(nota, 'f', -1, 64) + "/5"
}
