package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/seamcarver"
	"github.com/esimov/seamcarver/utils"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

type resizeOptions struct {
	source      string
	destination string
	newWidth    int
	newHeight   int
	percentage  bool
	square      bool
	scale       bool
	workers     int
}

// result holds the outcome of resizing a single image.
type result struct {
	path string
	out  string
	err  error
}

var resizeOpts resizeOptions

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Shrink an image, an image URL or a directory of images",
	Example: `  seamcarver resize --in input.jpg --out output.png --width 300
  seamcarver resize --in images/ --out carved/ --perc --width 20 --height 20
  cat input.png | seamcarver resize --height 200 > output.jpg`,
	RunE: runResize,
}

func init() {
	f := resizeCmd.Flags()
	f.StringVarP(&resizeOpts.source, "in", "i", pipeName, "Source image, URL or directory")
	f.StringVarP(&resizeOpts.destination, "out", "o", pipeName, "Destination image or directory")
	f.IntVar(&resizeOpts.newWidth, "width", 0, "New width")
	f.IntVar(&resizeOpts.newHeight, "height", 0, "New height")
	f.BoolVar(&resizeOpts.percentage, "perc", false, "Reduce image by percentage")
	f.BoolVar(&resizeOpts.square, "square", false, "Reduce image to square dimensions")
	f.BoolVar(&resizeOpts.scale, "scale", false, "Proportional scaling before carving")
	f.IntVar(&resizeOpts.workers, "conc", runtime.NumCPU(), "Number of files to process concurrently")

	rootCmd.AddCommand(resizeCmd)
}

func runResize(cmd *cobra.Command, args []string) error {
	opts := resizeOpts
	if opts.newWidth == 0 && opts.newHeight == 0 && !opts.square {
		return errors.New("please provide a width, height or percentage for image rescaling")
	}

	proc := &seamcarver.Processor{
		NewWidth:   opts.newWidth,
		NewHeight:  opts.newHeight,
		Percentage: opts.percentage,
		Square:     opts.square,
		Scale:      opts.scale,
	}

	src := opts.source
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return fmt.Errorf("failed to load the source image: %w", err)
		}
		defer os.Remove(f.Name())
		if err := f.Close(); err != nil {
			return err
		}
		src = f.Name()
	}

	var (
		info os.FileInfo
		err  error
	)
	if src == pipeName {
		info, err = os.Stdin.Stat()
	} else {
		info, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source image: %w", err)
	}

	spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
		statusPrefix(),
		utils.DecorateText("⇢ resizing image (be patient, it may take a while)...", utils.DefaultMessage),
	), 80*time.Millisecond, true)
	spinner.SetWriter(cmd.ErrOrStderr())

	// Capture CTRL-C signal and restore the cursor visibility back.
	signalChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(done)
	}()
	go func() {
		select {
		case <-signalChan:
			spinner.RestoreCursor()
			os.Exit(1)
		case <-done:
		}
	}()

	now := time.Now()
	stderr := cmd.ErrOrStderr()

	switch mode := info.Mode(); {
	case mode.IsDir():
		spinner.Start()
		results, err := resizeDir(cmd.Context(), proc, src, opts.destination, opts.workers, func(done, total int) {
			spinner.SetMessage(fmt.Sprintf("%s %s",
				statusPrefix(),
				utils.DecorateText(fmt.Sprintf("⇢ resized %d of %d images...", done, total), utils.DefaultMessage),
			))
		})
		spinner.StopMsg = stopMessage(err)
		spinner.Stop()

		for _, res := range results {
			printStatus(stderr, res.out, res.err)
		}
		if err != nil {
			return err
		}
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0:
		ext := strings.ToLower(filepath.Ext(opts.destination))
		if opts.destination != pipeName && !lo.Contains(seamcarver.SupportedExtensions, ext) {
			return fmt.Errorf("%v file type not supported", ext)
		}

		spinner.Start()
		err := resizeFile(proc, src, opts.destination)
		spinner.StopMsg = stopMessage(err)
		spinner.Stop()

		if err != nil {
			return err
		}
		printStatus(stderr, opts.destination, nil)
	default:
		return fmt.Errorf("unsupported source: %s", src)
	}

	fmt.Fprintf(stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	return nil
}

// resizeDir resizes every supported image found under src and writes the
// results into dst, keeping their path relative to src. At most workers
// goroutines run concurrently and the processing stops at the first failure.
// The optional progress callback is invoked after each processed image.
func resizeDir(
	ctx context.Context,
	proc *seamcarver.Processor,
	src, dst string,
	workers int,
	progress func(done, total int),
) ([]result, error) {
	if err := os.MkdirAll(dst, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the destination directory: %w", err)
	}
	// Limit the concurrently running workers to maxWorkers.
	if workers <= 0 || workers > maxWorkers {
		workers = runtime.NumCPU()
	}

	paths, err := imagePaths(src)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results []result
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel, err := filepath.Rel(src, path)
			if err != nil {
				return err
			}
			out := filepath.Join(dst, rel)
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return fmt.Errorf("unable to create the destination directory: %w", err)
			}

			// Each worker runs its own processor.
			p := *proc
			err = resizeFile(&p, path, out)

			mu.Lock()
			results = append(results, result{path: path, out: out, err: err})
			if progress != nil {
				progress(len(results), len(paths))
			}
			mu.Unlock()

			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}
	err = g.Wait()
	return results, err
}

// imagePaths walks the directory tree recursively and returns the path of
// every regular file having a supported image extension.
func imagePaths(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lo.Filter(paths, func(path string, _ int) bool {
		return lo.Contains(seamcarver.SupportedExtensions, strings.ToLower(filepath.Ext(path)))
	}), nil
}

// resizeFile calls the resizer over the source image and writes the result into out.
// The destination file is removed in case of an error.
func resizeFile(proc *seamcarver.Processor, in, out string) (err error) {
	src, dst, err := pathToFile(in, out)
	if err != nil {
		return err
	}
	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin {
			f.Close()
		}
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(f.Name())
			}
		}
	}()

	return proc.Process(src, dst)
}

// pathToFile converts the source and destination paths to readable and writable files.
func pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
	)
	// Check if the source is a pipe name or a regular file.
	if in == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdin")
		}
		src = os.Stdin
	} else {
		f, err := os.Open(in)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
		}
		src = f
	}

	// Check if the destination is a pipe name or a regular file.
	if out == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			closeReader(src)
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		f, err := os.Create(out)
		if err != nil {
			closeReader(src)
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
		dst = f
	}
	return src, dst, nil
}

func closeReader(r io.Reader) {
	if f, ok := r.(*os.File); ok && f != os.Stdin {
		f.Close()
	}
}

func stopMessage(err error) string {
	if err != nil {
		return fmt.Sprintf("%s %s %s",
			statusPrefix(),
			utils.DecorateText("resizing image failed...", utils.DefaultMessage),
			utils.DecorateText("✘", utils.ErrorMessage),
		)
	}
	return fmt.Sprintf("%s %s %s",
		statusPrefix(),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the image has been resized successfully ✔", utils.SuccessMessage),
	)
}

// printStatus displays the relevant information about the resizing process.
func printStatus(w io.Writer, fname string, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s %s\n",
			utils.DecorateText("Error resizing the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
		return
	}
	if fname != pipeName {
		fmt.Fprintf(w, "The image has been saved as: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}
