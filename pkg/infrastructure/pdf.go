// Package infrastructure holds process-external machinery: the headless
// Chrome bridge used for PDF export.
package infrastructure

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

// PDFRenderer prints rendered resume HTML to PDF through headless
// Chrome. The page carries its own @page rules, so Chrome is asked to
// prefer CSS page size on an A4 canvas.
type PDFRenderer struct {
	// ChromePath overrides binary discovery when set.
	ChromePath string
	// Timeout bounds a single print, browser startup included.
	Timeout time.Duration
}

func NewPDFRenderer(chromePath string) *PDFRenderer {
	return &PDFRenderer{ChromePath: chromePath, Timeout: 60 * time.Second}
}

func (r *PDFRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	printCtx, cancelPrint := context.WithTimeout(cctx, timeout)
	defer cancelPrint()

	// Chrome needs a file URL. Each print gets its own scratch file so
	// concurrent exports cannot clobber each other.
	tmpDir, err := os.MkdirTemp("", "resume-print-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, uuid.NewString()+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	var pdfBuf []byte
	err = chromedp.Run(printCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> 8.27in x 11.69in
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		slog.Error("pdf print failed", "error", err)
		return nil, err
	}
	return pdfBuf, nil
}
