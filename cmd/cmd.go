// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// configCommand handles configuration file management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a config.toml from the embedded example",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}

// authCommand handles session operations against the identity provider
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the login session",
		Commands: []*cli.Command{
			{
				Name:   "login",
				Usage:  "Log in through the identity provider in your browser",
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the current session and user identity",
				Action: r.AuthStatus,
			},
		},
	}
}

// moviesCommand handles movie collection operations
func moviesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Aliases: []string{"filmes"},
		Usage:   "Movie collection operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the movie collection",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MoviesList,
			},
			{
				Name:  "add",
				Usage: "Add a movie to the collection",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nome",
						Usage:    "Movie title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "descricao",
						Usage:    "Movie description",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "diretor",
						Usage:    "Movie director",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "nota",
						Usage:    "Rating between 0 and 5",
						Required: true,
					},
				},
				Action: r.MoviesAdd,
			},
			{
				Name:  "delete",
				Usage: "Delete a movie by id",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip the confirmation prompt",
					},
				},
				Action: r.MoviesDelete,
			},
			{
				Name:  "export",
				Usage: "Export the collection to CSV, Markdown, or plain text",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv, markdown, or text",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (defaults to stdout)",
					},
				},
				Action: r.MoviesExport,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive form-and-table interface.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive movie manager",
		Action:  r.TUI,
	}
}
