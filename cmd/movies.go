package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"filmoteca/internal/formatter"
	"filmoteca/internal/models"
	"filmoteca/internal/shared"
)

// MoviesList fetches and prints the movie collection in server order.
func (r *Runner) MoviesList(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if r.movies == nil {
		return fmt.Errorf("%w: movie API not configured", shared.ErrInvalidConfig)
	}

	r.logger.Info("listing movies")

	movies, err := r.movies.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if useJSON {
		return r.writeJSON(movies, pretty)
	}

	r.writePlain("Found %d movies:\n\n", len(movies))
	for i, movie := range movies {
		r.writePlain("%d. %s\n", i+1, movie.Nome)
		r.writePlain("   Diretor: %s\n", movie.Diretor)
		r.writePlain("   Nota: %s\n", formatter.FormatNota(movie.Nota))
		if movie.Descricao != "" {
			r.writePlain("   Descrição: %s\n", movie.Descricao)
		}
		r.writePlain("   ID: %d\n", movie.ID)
		r.writePlain("\n")
	}

	return nil
}

// MoviesAdd validates and submits a new movie from flag values.
func (r *Runner) MoviesAdd(ctx context.Context, cmd *cli.Command) error {
	if r.movies == nil {
		return fmt.Errorf("%w: movie API not configured", shared.ErrInvalidConfig)
	}

	draft := models.Draft{
		Nome:      cmd.String("nome"),
		Descricao: cmd.String("descricao"),
		Diretor:   cmd.String("diretor"),
	}
	draft.SetNota(cmd.String("nota"))

	if !models.ValidNota(cmd.String("nota")) {
		return fmt.Errorf("%w: nota must be a number between 0 and 5", shared.ErrInvalidArgument)
	}

	r.logger.Infof("adding movie %v", draft.Nome)

	movie, err := r.movies.Create(ctx, draft)
	if err != nil {
		return err
	}

	r.writePlain("✓ Movie added\n")
	r.writePlain("  Nome: %s\n", movie.Nome)
	r.writePlain("  ID: %d\n", movie.ID)

	return nil
}

// MoviesDelete removes a movie by id after a blocking confirmation.
func (r *Runner) MoviesDelete(ctx context.Context, cmd *cli.Command) error {
	if r.movies == nil {
		return fmt.Errorf("%w: movie API not configured", shared.ErrInvalidConfig)
	}

	rawID := cmd.StringArg("id")
	if rawID == "" {
		return fmt.Errorf("%w: movie id is required", shared.ErrMissingArgument)
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: movie id must be numeric, got %q", shared.ErrInvalidArgument, rawID)
	}

	if !cmd.Bool("yes") {
		if !r.confirm(fmt.Sprintf("Delete movie %d?", id)) {
			return r.writePlain("Aborted.\n")
		}
	}

	r.logger.Infof("deleting movie %v", id)

	if err := r.movies.Delete(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Movie %d deleted\n", id)
}

// MoviesExport fetches the collection and writes it in the requested format.
func (r *Runner) MoviesExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	outputFile := cmd.String("output")

	if r.movies == nil {
		return fmt.Errorf("%w: movie API not configured", shared.ErrInvalidConfig)
	}

	movies, err := r.movies.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var data []byte
	switch format {
	case "csv":
		data, err = formatter.ExportToCSV(movies)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(movies)
	case "text", "txt":
		data, err = formatter.ExportToText(movies)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
	if err != nil {
		return fmt.Errorf("failed to format collection: %w", err)
	}

	if outputFile == "" {
		_, err := r.output.Write(data)
		return err
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.writePlain("✓ Collection exported to %s (%d movies)\n", outputFile, len(movies))
	return nil
}
