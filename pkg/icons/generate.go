package icons

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/types"
)

// Options configures Generate
type Options struct {
	// Sizes overrides the default Sizes
	Sizes []int
	// SVG also writes icon-<size>.svg next to each PNG
	SVG bool
	// OnWrite is called with the file name after each file is written
	OnWrite func(name string)
}

type rendered struct {
	size int
	png  []byte
	svg  []byte
}

// FileName returns the PNG file name for a size
func FileName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// SVGFileName returns the SVG file name for a size
func SVGFileName(size int) string {
	return fmt.Sprintf("icon-%d.svg", size)
}

// Generate renders every size concurrently, then writes the files into dir
// one by one in size order. dir is created if missing. It returns the paths
// written.
func Generate(ctx context.Context, fsys types.FS, dir string, opts Options) ([]string, error) {
	logger := logging.GetLogger("icons")
	defer logging.LogOperationStart(logger, "generate")()

	sizes := opts.Sizes
	if len(sizes) == 0 {
		sizes = Sizes
	}

	results := make([]rendered, len(sizes))
	g, gctx := errgroup.WithContext(ctx)
	for i, size := range sizes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.Wrap(err, errors.ErrCancelled, "icon generation cancelled")
			}
			r, err := renderOne(size, opts.SVG)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create icon directory").
			WithDetail("path", dir)
	}

	var written []string
	for _, r := range results {
		if err := ctx.Err(); err != nil {
			return written, errors.Wrap(err, errors.ErrCancelled, "icon generation cancelled")
		}

		files := []struct {
			name string
			data []byte
		}{{FileName(r.size), r.png}}
		if r.svg != nil {
			files = append(files, struct {
				name string
				data []byte
			}{SVGFileName(r.size), r.svg})
		}

		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if err := fsys.WriteFile(path, f.data, 0644); err != nil {
				return written, errors.Wrap(err, errors.ErrFileWrite, "cannot write icon").
					WithDetail("path", path)
			}
			written = append(written, path)
			logger.Debug().Str("path", path).Int("bytes", len(f.data)).Msg("Icon written")
			if opts.OnWrite != nil {
				opts.OnWrite(f.name)
			}
		}
	}

	logger.Info().Int("files", len(written)).Str("dir", dir).Msg("Icons generated")
	return written, nil
}

func renderOne(size int, withSVG bool) (rendered, error) {
	img, err := Render(size)
	if err != nil {
		return rendered{}, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return rendered{}, errors.Wrap(err, errors.ErrInternal, "cannot encode png").
			WithDetail("size", size)
	}

	r := rendered{size: size, png: buf.Bytes()}
	if withSVG {
		if r.svg, err = RenderSVG(size); err != nil {
			return rendered{}, err
		}
	}
	return r, nil
}
