package contractgen

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-contractgen/internal/fileutil"
	"github.com/alnah/go-contractgen/internal/hints"
)

// US Letter with one-inch margins, matching the pandoc engine's geometry.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 1.0
)

// defaultChromeTimeout bounds page loading when ctx has no deadline.
const defaultChromeTimeout = 30 * time.Second

// chromeEngine prints the HTML file with headless Chrome via go-rod.
// Rod downloads Chromium on first run if no browser is found.
type chromeEngine struct {
	timeout time.Duration
}

// Compile-time interface check.
var _ PDFEngine = (*chromeEngine)(nil)

func newChromeEngine(timeout time.Duration) *chromeEngine {
	return &chromeEngine{timeout: timeout}
}

func (e *chromeEngine) Name() string        { return EngineChrome }
func (e *chromeEngine) NeedsHTML() bool     { return true }
func (e *chromeEngine) Requirement() string { return "Chrome or Chromium" }

// Render launches a browser for this job only and closes it before returning.
func (e *chromeEngine) Render(ctx context.Context, job PDFJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := filepath.Abs(job.HTMLPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	l := newLauncher()
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect())
	}
	defer l.Kill()

	browser := rod.New().ControlURL(u).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer func() { _ = browser.Close() }()

	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}).String()
	page, err := browser.Page(proto.TargetCreateTarget{URL: fileURL})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer func() { _ = page.Close() }()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(printOptions())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	if err := fileutil.WriteFile(job.PDFPath, string(pdf)); err != nil {
		return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return nil
}

// newLauncher configures the Chrome launcher from the environment.
// ROD_BROWSER_BIN selects a pre-installed browser; CI and containers need NoSandbox.
func newLauncher() *launcher.Launcher {
	l := launcher.New()
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}
	return l
}

func printOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(paperWidthInches),
		PaperHeight:     floatPtr(paperHeightInches),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
