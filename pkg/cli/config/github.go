package config

import "github.com/urfave/cli/v3"

// GitHub holds API access configuration
type GitHub struct {
	Token   string `masq:"secret"`
	BaseURL string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token (raises rate limits)",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN", "CODEFETCH_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "Override the API base URL (GitHub Enterprise)",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("CODEFETCH_GITHUB_API_URL"),
		},
	}
}
