// Package process runs the arrangement of scene files, either one at a time
// or concurrently over a whole directory, and writes the rendered results.
package process

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/esimov/linear"
	"github.com/esimov/linear/render"
	"github.com/esimov/linear/scene"
	"github.com/esimov/linear/utils"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Ops holds the options of a processing run.
type Ops struct {
	Src, Dst, PipeName string
	Format             scene.Format
	Workers            int
	Print              bool
	Override           Override
	Render             render.Options

	// Log receives the status messages, os.Stderr if nil.
	Log io.Writer
	// Out receives the placement tables and the piped images, os.Stdout if nil.
	Out io.Writer
}

// result holds the relevant information about the processed scene file.
type result struct {
	path string
	err  error
}

// Override replaces parts of the layout definition of every processed scene.
type Override struct {
	Direction string
	HAlign    string
	VAlign    string
}

// Apply updates the scene layout with the non-empty override values.
func (o Override) Apply(sc *scene.Scene) error {
	if o.Direction != "" {
		sc.Layout.Direction = scene.Direction(strings.ToLower(o.Direction))
	}
	if o.HAlign != "" {
		h, err := linear.ParseHorizontalAlignment(o.HAlign)
		if err != nil {
			return err
		}
		sc.Layout.HAlign = &h
	}
	if o.VAlign != "" {
		v, err := linear.ParseVerticalAlignment(o.VAlign)
		if err != nil {
			return err
		}
		sc.Layout.VAlign = &v
	}
	_, err := sc.Strategy()
	return err
}

func (op *Ops) logger() io.Writer {
	if op.Log == nil {
		return os.Stderr
	}
	return op.Log
}

func (op *Ops) stdout() io.Writer {
	if op.Out == nil {
		return os.Stdout
	}
	return op.Out
}

// Execute arranges the scene (or the scenes of a directory) found at op.Src.
// The rendered images are written to op.Dst when it is set.
func (op *Ops) Execute() error {
	src, cleanup, err := op.resolveSource()
	if err != nil {
		return err
	}
	defer cleanup()

	var fs os.FileInfo
	if src == op.PipeName {
		fs, err = os.Stdin.Stat()
	} else {
		fs, err = os.Stat(src)
	}
	if err != nil {
		return fmt.Errorf("failed to load the source scene: %w", err)
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		if err := op.executeDir(src); err != nil {
			return err
		}
	case mode.IsRegular() || mode&os.ModeNamedPipe != 0 || mode&os.ModeCharDevice != 0:
		if op.Dst != "" && op.Dst != op.PipeName {
			if !render.Supported(op.Dst) {
				return fmt.Errorf("%v file type not supported", filepath.Ext(op.Dst))
			}
		}
		err := op.process(src, op.Dst)
		op.printOpStatus(op.Dst, err)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported source: %s", src)
	}

	fmt.Fprintf(op.logger(), "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	return nil
}

// executeDir processes recursively the scene files from the src directory concurrently.
func (op *Ops) executeDir(src string) error {
	if op.Dst != "" {
		// Read destination file or directory.
		if _, err := os.Stat(op.Dst); err != nil {
			if err := os.MkdirAll(op.Dst, 0755); err != nil {
				return fmt.Errorf("unable to get dir stats: %w", err)
			}
		}
	}

	workers := workerCount(op.Workers)

	ch := make(chan result)
	done := make(chan interface{})
	defer close(done)

	paths, errc := walkDir(done, src, scene.Extensions)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(src, op.Dst, ch, done, paths)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	var firstErr error
	for res := range ch {
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		op.printOpStatus(res.path, res.err)
	}

	if err := <-errc; err != nil {
		return err
	}
	return firstErr
}

// workerCount limits the concurrently running workers to maxWorkers.
// An out of range request falls back to the number of CPUs, within the same limit.
func workerCount(n int) int {
	if n <= 0 || n > maxWorkers {
		return utils.Min(runtime.NumCPU(), maxWorkers)
	}
	return n
}

// consumer reads the path names from the paths channel and arranges every scene.
func (op *Ops) consumer(
	root, dest string,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		var (
			dst string
			err error
		)
		if dest != "" {
			dst, err = outputPath(root, dest, src)
		}
		if err == nil {
			err = op.process(src, dst)
		}

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// outputPath maps a scene found under root to its image under dest. The
// relative directory and the scene extension are kept, so every scene of the
// tree gets its own image: root/ui/bar.toml becomes dest/ui/bar.toml.png.
func outputPath(root, dest, src string) (string, error) {
	rel, err := filepath.Rel(root, src)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dest, rel+".png")
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("unable to create the destination directory: %w", err)
	}
	return dst, nil
}

// process loads a single scene, prints its placements if requested
// and renders it into dst when dst is not empty.
func (op *Ops) process(in, out string) error {
	sc, err := op.load(in)
	if err != nil {
		return err
	}

	placements, err := sc.Arrange()
	if err != nil {
		return err
	}
	if op.Print {
		// The image owns stdout when it is piped.
		w := op.stdout()
		if out == op.PipeName {
			w = op.logger()
		}
		fmt.Fprintln(w, Report(sc, placements))
	}
	if out == "" {
		return nil
	}

	opts := op.Render
	if opts == (render.Options{}) {
		opts = render.DefaultOptions
	}
	img, err := render.Scene(sc, opts)
	if err != nil {
		return err
	}

	dst, err := op.destination(out)
	if err != nil {
		return err
	}
	if f, ok := dst.(*os.File); ok && f != os.Stdout {
		defer f.Close()
	}

	if err := render.Encode(dst, img, out); err != nil {
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			// remove the partially written file in case of an error
			os.Remove(f.Name())
		}
		return err
	}
	return nil
}

// LoadScene loads the scene found at op.Src and applies the overrides.
// It is used by the preview mode which needs a single scene.
func (op *Ops) LoadScene() (*scene.Scene, error) {
	src, cleanup, err := op.resolveSource()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return op.load(src)
}

func (op *Ops) load(in string) (*scene.Scene, error) {
	var (
		sc  *scene.Scene
		err error
	)
	// Check if the source is a pipe name or a regular file.
	if in == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdin")
		}
		format := op.Format
		if format == "" {
			format = scene.TOML
		}
		sc, err = scene.Decode(os.Stdin, format)
	} else {
		sc, err = scene.Load(in)
	}
	if err != nil {
		return nil, err
	}

	if err := op.Override.Apply(sc); err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return sc, nil
}

// resolveSource downloads the scene in case the source is an URL.
// The returned cleanup function removes the temporary file.
func (op *Ops) resolveSource() (string, func(), error) {
	if !utils.IsValidUrl(op.Src) {
		return op.Src, func() {}, nil
	}

	f, err := utils.DownloadFile(op.Src)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load the source scene: %w", err)
	}
	f.Close()

	return f.Name(), func() { os.Remove(f.Name()) }, nil
}

// destination converts the destination path to a writable file.
func (op *Ops) destination(out string) (io.Writer, error) {
	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if op.Out != nil {
			return op.Out, nil
		}
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, errors.New("`-` should be used with a pipe for stdout")
		}
		return os.Stdout, nil
	}

	dst, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("unable to create the destination file: %w", err)
	}
	return dst, nil
}

// printOpStatus displays the relevant information about the processed scene.
func (op *Ops) printOpStatus(fname string, err error) {
	w := op.logger()
	if err != nil {
		fmt.Fprintf(w, "%s %s\n",
			utils.DecorateText("\nError arranging the scene:", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v", err.Error()), utils.DefaultMessage),
		)
		return
	}
	if fname != "" && fname != op.PipeName {
		fmt.Fprintf(w, "\nThe scene has been processed: %s %s\n",
			utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			utils.DefaultColor,
		)
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each scene file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}

			if isValidExtension(filepath.Ext(f.Name()), srcExts) {
				select {
				case <-done:
					return errors.New("directory walk cancelled")
				case pathChan <- path:
				}
			}
			return nil
		})
	}()
	return pathChan, errChan
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	return utils.Contains(extensions, strings.ToLower(ext))
}
