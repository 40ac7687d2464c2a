// Command img applies image filters from the command line.
//
// Usage:
//
//	img -i in.png -o out.png grayscale
//	img -i in.png -o out.png -t 4 blur gaussian -r 3 -s 1.5 -f RGB
//	img -i in.jpg -o out.png crop -s 200x100+10x20
//
// The output format follows the extension of -o.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/img"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the flags shared by every subcommand.
type app struct {
	input   string
	output  string
	threads threadsValue
	verbose bool

	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "img",
		Short:         "Apply filters to images",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				img.SetLogger(slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.input, "input", "i", "", "input image")
	pf.StringVarP(&a.output, "output", "o", "", "output image; the extension selects the format")
	pf.VarP(&a.threads, "threads", "t", "number of workers")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	_ = root.MarkPersistentFlagRequired("input")
	_ = root.MarkPersistentFlagRequired("output")

	root.AddCommand(
		a.grayscaleCmd(),
		a.sepiaCmd(),
		a.negativeCmd(),
		a.gammaCmd(),
		a.resizeCmd(),
		a.cropCmd(),
		a.blurCmd(),
		a.cannyCmd(),
		a.kuwaharaCmd(),
	)
	return root
}

func (a *app) options(extra ...img.Option) []img.Option {
	return append([]img.Option{img.WithWorkers(int(a.threads))}, extra...)
}

// filterFunc transforms a decoded image.
type filterFunc func(im *img.Image) (*img.Image, error)

// run loads the input, applies f and saves the result.
func (a *app) run(f filterFunc) error {
	src, err := img.Load(a.input)
	if err != nil {
		return err
	}
	out, err := f(src)
	if err != nil {
		return err
	}
	if err := img.Save(a.output, out); err != nil {
		return err
	}
	info, err := os.Stat(a.output)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(a.stdout, "wrote %s: %v, %d bytes\n", a.output, out.Size(), info.Size())
	return err
}
