package config

import "github.com/urfave/cli/v3"

// Download holds download configuration
type Download struct {
	Destination string
	Parallel    int
	All         bool
	NoValidate  bool
}

// Flags returns CLI flags for download configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "destination",
			Aliases:     []string{"d"},
			Usage:       "Destination directory for downloaded files",
			Value:       "github_downloads",
			Destination: &c.Destination,
			Sources:     cli.EnvVars("CODEFETCH_DESTINATION"),
		},
		&cli.IntFlag{
			Name:        "parallel",
			Aliases:     []string{"p"},
			Usage:       "Number of parallel downloads",
			Value:       5,
			Destination: &c.Parallel,
			Sources:     cli.EnvVars("CODEFETCH_PARALLEL"),
		},
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "Download all results without prompting",
			Destination: &c.All,
		},
		&cli.BoolFlag{
			Name:        "no-validate",
			Usage:       "Skip validating downloaded content against the search terms",
			Destination: &c.NoValidate,
		},
	}
}
