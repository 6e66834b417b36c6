package importer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

type fakeHistory struct {
	urls []string
}

func (f *fakeHistory) RecordURLUse(_ context.Context, url string) {
	f.urls = append(f.urls, url)
}

func sampleJSON(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(model.SampleResume())
	require.NoError(t, err)
	return raw
}

func TestImportFile(t *testing.T) {
	im := NewImporter(nil)

	t.Run("accepts json extension", func(t *testing.T) {
		rec, err := im.ImportFile("resume.json", "", sampleJSON(t))
		require.NoError(t, err)
		assert.Equal(t, model.SampleResume(), rec)
	})

	t.Run("accepts json mimetype without extension", func(t *testing.T) {
		_, err := im.ImportFile("resume", "application/json; charset=utf-8", sampleJSON(t))
		require.NoError(t, err)
	})

	t.Run("rejects wrong file type before parsing", func(t *testing.T) {
		_, err := im.ImportFile("resume.pdf", "application/pdf", []byte("%PDF-1.4"))
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "resume.pdf", fe.Filename)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := im.ImportFile("resume.json", "", []byte("{broken"))
		var pe *model.ParseError
		require.ErrorAs(t, err, &pe)
	})

	t.Run("rejects schema violations with field list", func(t *testing.T) {
		r := model.SampleResume()
		r.PersonalInfo.Email = "nope"
		raw, err := json.Marshal(r)
		require.NoError(t, err)

		_, err = im.ImportFile("resume.json", "", raw)
		var ve *model.ValidationError
		require.ErrorAs(t, err, &ve)
		require.NotEmpty(t, ve.Fields)
	})
}

func TestImportURLSchemeGate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	history := &fakeHistory{}
	im := NewImporter(history)

	_, err := im.ImportURL(context.Background(), srv.URL+"/r.json") // http://
	var se *SecurityError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "http", se.Scheme)
	assert.Zero(t, calls.Load(), "scheme gate must fire before any network call")
	assert.Empty(t, history.urls)
}

// tlsImporter points the importer's transport at a TLS test server.
func tlsImporter(t *testing.T, srv *httptest.Server, history URLHistory) *Importer {
	t.Helper()
	im := NewImporter(history)
	im.client = srv.Client()
	return im
}

func TestImportURLSuccess(t *testing.T) {
	body := sampleJSON(t)
	var gotAccept string
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		// Deliberately wrong Content-Type; import must still parse the body.
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	history := &fakeHistory{}
	im := tlsImporter(t, srv, history)

	rec, err := im.ImportURL(context.Background(), srv.URL+"/resume.json")
	require.NoError(t, err)
	assert.Equal(t, model.SampleResume(), rec)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, []string{srv.URL + "/resume.json"}, history.urls)
}

func TestImportURLNon2xx(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	history := &fakeHistory{}
	im := tlsImporter(t, srv, history)

	_, err := im.ImportURL(context.Background(), srv.URL+"/resume.json")
	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.StatusNotFound, ne.StatusCode)
	assert.Empty(t, history.urls, "failed imports must not be recorded")
}

func TestImportURLTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	im := tlsImporter(t, srv, nil)
	im.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := im.ImportURL(context.Background(), srv.URL+"/resume.json")
	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestImportURLValidationFailureNotRecorded(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"personalInfo": {}}`))
	}))
	defer srv.Close()

	history := &fakeHistory{}
	im := tlsImporter(t, srv, history)

	_, err := im.ImportURL(context.Background(), srv.URL+"/resume.json")
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, history.urls)
}

func TestExport(t *testing.T) {
	rec := model.SampleResume()
	rec.Interests = append(rec.Interests, "", "  ")

	raw, filename := Export(rec)
	assert.Equal(t, "jane-okafor-resume.json", filename)
	assert.True(t, strings.HasPrefix(string(raw), "{\n"), "export should be pretty-printed")

	// Round-trip: export then import reconstructs an equal record.
	got, err := model.Validate(raw)
	require.NoError(t, err)
	want := model.SampleResume()
	assert.Equal(t, want, got)

	// Blank entries never serialize.
	assert.NotContains(t, got.Interests, "")
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "jane-okafor-resume.json", ExportFilename("  Jane   Okafor "))
	assert.Equal(t, "resume.json", ExportFilename(""))
	assert.Equal(t, "resume.json", ExportFilename("!!!"))
	assert.Equal(t, "j-doe-2-resume.json", ExportFilename("J. Doe 2"))
}
