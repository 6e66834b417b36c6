package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-builder/internal/model"
)

// FetchTimeout is the fixed budget for a remote import. There is no
// user-initiated cancel; the timeout is the only thing that aborts an
// in-flight fetch.
const FetchTimeout = 10 * time.Second

// maxDocumentSize bounds how much of a response body is read. A resume
// document is a few kilobytes; anything near this limit is not one.
const maxDocumentSize = 4 << 20

// URLHistory records successfully imported URLs. Satisfied by
// repository.Store.
type URLHistory interface {
	RecordURLUse(ctx context.Context, url string)
}

// Importer converts external JSON documents into validated records.
// Import has no side effects beyond URL history: the caller decides
// whether to apply the returned record.
type Importer struct {
	client  *http.Client
	history URLHistory

	// Timeout overrides FetchTimeout; tests shrink it.
	Timeout time.Duration
}

func NewImporter(history URLHistory) *Importer {
	return &Importer{
		client:  &http.Client{},
		history: history,
		Timeout: FetchTimeout,
	}
}

// ImportFile validates an uploaded file. Gate order is fixed: file type
// first (*FormatError, before the content is even looked at), then JSON
// syntax (*model.ParseError), then schema (*model.ValidationError).
func (im *Importer) ImportFile(filename, contentType string, data []byte) (*model.Resume, error) {
	if !isJSONFile(filename, contentType) {
		return nil, &FormatError{Filename: filename, ContentType: contentType}
	}
	return model.Validate(data)
}

func isJSONFile(filename, contentType string) bool {
	if strings.HasSuffix(strings.ToLower(filename), ".json") {
		return true
	}
	// Content-Type may carry parameters, e.g. "application/json; charset=utf-8".
	mime, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mime) == "application/json"
}

// ImportURL fetches and validates a remote document. Only https is
// accepted; the scheme gate fires before any network access. A wrong or
// missing Content-Type on the response is tolerated, the body is parsed
// regardless. Successful imports are appended to the URL history.
func (im *Importer) ImportURL(ctx context.Context, rawURL string) (*model.Resume, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &SecurityError{URL: rawURL, Scheme: ""}
	}
	if u.Scheme != "https" {
		return nil, &SecurityError{URL: rawURL, Scheme: u.Scheme}
	}

	timeout := im.Timeout
	if timeout <= 0 {
		timeout = FetchTimeout
	}
	fctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := im.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: rawURL}
		}
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{URL: rawURL}
		}
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	rec, err := model.Validate(body)
	if err != nil {
		return nil, err
	}

	if im.history != nil {
		im.history.RecordURLUse(ctx, rawURL)
	}
	slog.Info("imported resume from url", "url", rawURL)
	return rec, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
