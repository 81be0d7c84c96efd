package config

import "github.com/urfave/cli/v3"

// Search holds search query configuration
type Search struct {
	Query    string
	Language string
	Limit    int
}

// Flags returns CLI flags for search configuration
func (c *Search) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "query",
			Aliases:     []string{"q"},
			Usage:       "Search query (omit to run interactively)",
			Destination: &c.Query,
			Sources:     cli.EnvVars("CODEFETCH_QUERY"),
		},
		&cli.StringFlag{
			Name:        "language",
			Aliases:     []string{"l"},
			Usage:       "Filter results by language",
			Destination: &c.Language,
			Sources:     cli.EnvVars("CODEFETCH_LANGUAGE"),
		},
		&cli.IntFlag{
			Name:        "limit",
			Aliases:     []string{"n"},
			Usage:       "Maximum number of results",
			Value:       30,
			Destination: &c.Limit,
			Sources:     cli.EnvVars("CODEFETCH_LIMIT"),
		},
	}
}
