// Command wv opens a webview window on a URL or an HTML file.
//
//	wv --url https://www.wikipedia.org --title Wikipedia
//	wv --html page.html --size-hint fixed
//
// Pages can call two bound functions: echo(...args) resolves with its
// arguments, and quit() closes the window.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/crafted-tech/wv"
	"github.com/crafted-tech/wv/native"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "url",
		Aliases: []string{"u"},
		Usage:   "navigate to `url`",
	},
	&cli.PathFlag{
		Name:  "html",
		Usage: "load the page from html `file`",
	},
	&cli.StringFlag{
		Name:  "title",
		Usage: "window `title`",
		Value: "wv",
	},
	&cli.IntFlag{
		Name:  "width",
		Usage: "window width in pixels",
		Value: 800,
	},
	&cli.IntFlag{
		Name:  "height",
		Usage: "window height in pixels",
		Value: 600,
	},
	&cli.StringFlag{
		Name:  "size-hint",
		Usage: "interpret the size as `hint`: none, min, max or fixed",
		Value: "none",
	},
	&cli.BoolFlag{
		Name:  "debug",
		Usage: "enable developer tools",
	},
	&cli.PathFlag{
		Name:        "library",
		Usage:       "load the webview shared library from `path`",
		DefaultText: "search $" + native.EnvLibraryPath + ", then next to the executable",
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to debug, info, warn or error",
		Value:   "warn",
		EnvVars: []string{"WV_LOGLVL"},
	},
}

func main() {
	app := &cli.App{
		Name:      "wv",
		Usage:     "open a webview window",
		UsageText: "wv [options]",
		Flags:     flags,
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	log, err := newLogger(c.String("loglvl"))
	if err != nil {
		return err
	}
	defer log.Sync()
	wv.SetLogger(log)

	hint, ok := wv.ParseSizeHint(c.String("size-hint"))
	if !ok {
		return fmt.Errorf("invalid size hint %q", c.String("size-hint"))
	}

	page, err := source(c)
	if err != nil {
		return err
	}

	w, err := wv.New(
		wv.WithDebug(c.Bool("debug")),
		wv.WithTitle(c.String("title")),
		wv.WithSize(c.Int("width"), c.Int("height"), hint),
		wv.WithLibraryPath(c.Path("library")),
	)
	if err != nil {
		return err
	}
	defer w.Release()

	if err := w.BindFunc("echo", func(args ...any) []any { return args }); err != nil {
		return err
	}
	if err := w.BindFunc("quit", func() error {
		return w.Dispatch(func(w *wv.Webview) {
			if err := w.Terminate(); err != nil {
				log.Warn("terminate failed", zap.Error(err))
			}
		})
	}); err != nil {
		return err
	}

	if err := page(w); err != nil {
		return err
	}

	log.Info("running", zap.String("title", c.String("title")))
	return w.Run()
}

// source returns the function that loads the requested page.
func source(c *cli.Context) (func(*wv.Webview) error, error) {
	url, file := c.String("url"), c.Path("html")
	switch {
	case url != "" && file != "":
		return nil, errors.New("--url and --html are mutually exclusive")
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return func(w *wv.Webview) error { return w.SetHTML(string(b)) }, nil
	case url != "":
		return func(w *wv.Webview) error { return w.Navigate(url) }, nil
	}
	return func(w *wv.Webview) error { return w.SetHTML(blank) }, nil
}

const blank = `<!doctype html>
<html>
<body>
<h1>wv</h1>
<button onclick="echo('hello', 42).then(r => document.body.append(JSON.stringify(r)))">echo</button>
<button onclick="quit()">quit</button>
</body>
</html>`

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
