package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"interlit/internal/diag"
	"interlit/internal/diagfmt"
	"interlit/internal/source"
)

// Options configures a directory run.
type Options struct {
	MaxDiagnostics int
	Jobs           int        // <= 0 means GOMAXPROCS
	Cache          *DiskCache // nil disables caching
}

// DirResult is one file's outcome in a directory run.
type DirResult struct {
	FileResult
	FromCache bool
	Cached    *DiskPayload // set when FromCache
}

// listSourceFiles returns the sorted list of *.il files under dir.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".il") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LowerDir runs the pipeline over every *.il file under dir in parallel.
// Results come back in file order regardless of completion order.
func LowerDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []DirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// one slot per file; no mutex needed
	results := make([]DirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, bad := loadErrors[path]; bad {
				bag := diag.NewBag(opts.MaxDiagnostics)
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = DirResult{FileResult: FileResult{Path: path, Bag: bag}}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if opts.Cache != nil {
				var payload DiskPayload
				if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit && payload.Errors == 0 {
					results[i] = DirResult{
						FileResult: FileResult{Path: path, FileID: fileID, Bag: diag.NewBag(opts.MaxDiagnostics)},
						FromCache:  true,
						Cached:     &payload,
					}
					return nil
				}
			}

			res := LowerFile(fileSet, fileID, opts.MaxDiagnostics)
			results[i] = DirResult{FileResult: res}

			if opts.Cache != nil {
				// a best-effort write; a failed Put only costs the next run
				_ = opts.Cache.Put(file.Hash, payloadFor(fileSet, res))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func payloadFor(fs *source.FileSet, res FileResult) *DiskPayload {
	payload := &DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Path:     res.Path,
		Errors:   res.Bag.Len(),
		Literals: make([]CachedLiteral, 0, len(res.Lowered)),
	}
	for _, ll := range res.Lowered {
		args := make([]string, len(ll.Args))
		for j := range ll.Args {
			args[j] = diagfmt.LoweredArgs(fs, ll.Args[j:j+1])
		}
		payload.Literals = append(payload.Literals, CachedLiteral{
			Kind:      ll.Lit.Kind.String(),
			BodyStart: ll.Lit.Body.Start,
			BodyEnd:   ll.Lit.Body.End,
			Args:      args,
		})
	}
	return payload
}
