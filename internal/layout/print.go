package layout

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// printTimeout bounds the headless Chrome session for one document.
const printTimeout = 60 * time.Second

// paperSizes maps page size names to width and height in inches.
var paperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"a4":     {8.27, 11.69},
}

// WritePDF renders the document to HTML, prints it in a headless browser,
// and writes the PDF to path. Requires Chrome/Chromium to be installed on
// the system. A permission failure on the output file is reported as a
// *PermissionError; every other failure is a *RenderError.
func (d *Document) WritePDF(ctx context.Context, path string) error {
	html, err := d.HTML()
	if err != nil {
		return err
	}

	stagePath := filepath.Join(os.TempDir(), fmt.Sprintf("resumepdf-%s.html", uuid.NewString()))
	if err := os.WriteFile(stagePath, []byte(html), 0o600); err != nil {
		return &RenderError{Message: "failed to stage HTML for printing", Cause: err}
	}
	defer os.Remove(stagePath)

	pdf, err := d.print(ctx, stagePath)
	if err != nil {
		return &RenderError{Message: "headless print failed", Cause: err}
	}

	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return &PermissionError{Path: path, Cause: err}
		}
		return &RenderError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}

// print loads the staged HTML file in headless Chrome and returns the
// printed PDF bytes.
func (d *Document) print(ctx context.Context, htmlPath string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, printTimeout)
	defer cancel()

	width, height := paperDimensions(d.page.Size)

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(d.page.MarginTop).
				WithMarginBottom(d.page.MarginBottom).
				WithMarginLeft(d.page.MarginLeft).
				WithMarginRight(d.page.MarginRight).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// paperDimensions returns width and height in inches for a page size
// name, falling back to letter for unknown names.
func paperDimensions(size string) (width, height float64) {
	if dims, ok := paperSizes[size]; ok {
		return dims[0], dims[1]
	}
	letter := paperSizes["letter"]
	return letter[0], letter[1]
}
