package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/codefetch/pkg/cli/config"
	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	githubinfra "github.com/m-mizutani/codefetch/pkg/infra/github"
	"github.com/m-mizutani/codefetch/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSearch() *cli.Command {
	var (
		searchCfg   config.Search
		downloadCfg config.Download
		githubCfg   config.GitHub
	)

	flags := append(searchCfg.Flags(), downloadCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)

	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Search code and download selected files",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if githubCfg.Token == "" {
				logger.Warn("no GitHub token configured, unauthenticated rate limits apply")
			}

			opts := []githubinfra.Option{
				githubinfra.WithToken(githubCfg.Token),
			}
			if githubCfg.BaseURL != "" {
				opts = append(opts, githubinfra.WithBaseURL(githubCfg.BaseURL))
			}

			client, err := githubinfra.New(opts...)
			if err != nil {
				return goerr.Wrap(err, "failed to create GitHub client")
			}

			runner := &searchRunner{
				searchUC: usecase.NewSearch(client),
				newDownloadUC: func(v model.ContentValidator) interfaces.DownloadUseCase {
					return usecase.NewDownload(client,
						usecase.WithParallel(downloadCfg.Parallel),
						usecase.WithValidator(v),
					)
				},
				prompter:    NewPrompter(os.Stdin, os.Stdout),
				out:         os.Stdout,
				destination: downloadCfg.Destination,
				all:         downloadCfg.All,
				noValidate:  downloadCfg.NoValidate,
			}

			if searchCfg.Query == "" {
				return runner.interactive(ctx)
			}

			return runner.runOnce(ctx, model.Query{
				Text:     searchCfg.Query,
				Language: searchCfg.Language,
				Limit:    searchCfg.Limit,
			})
		},
	}
}
