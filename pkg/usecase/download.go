package usecase

import (
	"context"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/m-mizutani/codefetch/pkg/domain/interfaces"
	"github.com/m-mizutani/codefetch/pkg/domain/model"
	"github.com/m-mizutani/codefetch/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultParallel = 5

	dirPerm  = 0o755
	filePerm = 0o644
)

type downloadUseCase struct {
	client    interfaces.CodeSearchClient
	parallel  int
	validator model.ContentValidator
}

// DownloadOption is a functional option for the download use case
type DownloadOption func(*downloadUseCase)

// WithParallel sets the worker concurrency limit
func WithParallel(n int) DownloadOption {
	return func(uc *downloadUseCase) {
		if n > 0 {
			uc.parallel = n
		}
	}
}

// WithValidator sets a content validator applied before writing. Content
// that fails validation is recorded as a failed outcome and not written.
func WithValidator(v model.ContentValidator) DownloadOption {
	return func(uc *downloadUseCase) {
		uc.validator = v
	}
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(client interfaces.CodeSearchClient, opts ...DownloadOption) interfaces.DownloadUseCase {
	uc := &downloadUseCase{
		client:   client,
		parallel: defaultParallel,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Download fetches and persists every task with at most the configured
// number of concurrent workers. Outcome i corresponds to task i. A failing
// task never aborts the batch; a cancelled context stops issuing new fetches
// while tasks already in flight resolve on their own.
func (uc *downloadUseCase) Download(ctx context.Context, tasks []model.Task) []model.Outcome {
	logger := ctxlog.From(ctx)

	outcomes := make([]model.Outcome, len(tasks))
	sem := make(chan struct{}, uc.parallel)

	var eg errgroup.Group

	for i := range tasks {
		task := tasks[i]
		idx := i

		if err := ctx.Err(); err != nil {
			outcomes[idx] = model.Outcome{
				Task: task,
				Err:  goerr.Wrap(err, "download cancelled", goerr.V("file", task.Result.Key())),
			}

			continue
		}

		select {
		case <-ctx.Done():
			outcomes[idx] = model.Outcome{
				Task: task,
				Err:  goerr.Wrap(ctx.Err(), "download cancelled", goerr.V("file", task.Result.Key())),
			}

			continue
		case sem <- struct{}{}:
		}

		eg.Go(func() error {
			defer func() { <-sem }()
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic in download worker",
						"recover", r,
						"file", task.Result.Key(),
						"stack", string(debug.Stack()),
					)
					outcomes[idx] = model.Outcome{
						Task: task,
						Err:  goerr.New("download worker panicked", goerr.V("recover", r)),
					}
				}
			}()

			outcomes[idx] = uc.fetchOne(ctx, task)

			return nil
		})
	}

	// Workers never return errors; outcomes carry per-task failures
	_ = eg.Wait()

	return outcomes
}

func (uc *downloadUseCase) fetchOne(ctx context.Context, task model.Task) model.Outcome {
	logger := ctxlog.From(ctx)

	content, err := uc.client.FetchContent(ctx, task.Result)
	if err != nil {
		logger.Warn("failed to fetch file content", "file", task.Result.Key(), "error", err)

		return model.Outcome{Task: task, Err: err}
	}

	if uc.validator != nil && !uc.validator(string(content)) {
		logger.Debug("content did not match search terms, skipping", "file", task.Result.Key())

		return model.Outcome{
			Task: task,
			Err: goerr.Wrap(types.ErrContentRejected, "content does not match search terms",
				goerr.V("file", task.Result.Key())),
		}
	}

	if err := os.MkdirAll(filepath.Dir(task.Destination), dirPerm); err != nil {
		return model.Outcome{
			Task: task,
			Err:  goerr.Wrap(err, "failed to create destination directory", goerr.V("path", task.Destination)),
		}
	}

	if err := os.WriteFile(task.Destination, content, filePerm); err != nil {
		return model.Outcome{
			Task: task,
			Err:  goerr.Wrap(err, "failed to write file", goerr.V("path", task.Destination)),
		}
	}

	logger.Debug("downloaded file",
		"file", task.Result.Key(),
		"destination", task.Destination,
		"size_bytes", len(content),
	)

	return model.Outcome{Task: task, Bytes: int64(len(content))}
}
