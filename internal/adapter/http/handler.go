// Package http is the session's I/O boundary: fiber handlers gluing
// the editor, importer, renderers, and store together. Every typed
// import or validation failure maps to a JSON payload with a "kind"
// discriminator so the client can tell the failure classes apart.
package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/adapter/importer"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
)

// PDFPrinter prints rendered HTML to PDF bytes.
type PDFPrinter interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	editor   *usecase.Editor
	session  *usecase.Session
	imp      *importer.Importer
	registry *render.Registry
	pdf      PDFPrinter
	recents  RecentURLSource
}

// RecentURLSource lists previously imported URLs. Satisfied by
// repository.Store.
type RecentURLSource interface {
	RecentURLs(ctx context.Context) []string
}

func NewHandler(editor *usecase.Editor, session *usecase.Session, imp *importer.Importer, registry *render.Registry, pdf PDFPrinter, recents RecentURLSource) *Handler {
	return &Handler{
		editor:   editor,
		session:  session,
		imp:      imp,
		registry: registry,
		pdf:      pdf,
		recents:  recents,
	}
}

func (h *Handler) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/resume", h.GetResume)
	api.Put("/resume", h.PutResume)
	api.Post("/resume/submit", h.SubmitResume)
	api.Post("/resume/sample", h.LoadSample)
	api.Post("/resume/edit", h.EnterEdit)
	api.Post("/resume/list/insert", h.InsertListEntry)
	api.Post("/resume/list/remove", h.RemoveListEntry)

	api.Post("/import/file", h.ImportFile)
	api.Post("/import/url", h.ImportURL)
	api.Get("/import/recent", h.RecentImports)

	api.Get("/export/json", h.ExportJSON)
	api.Get("/export/pdf/:template", h.ExportPDF)
	api.Get("/export/docx/:template", h.ExportDocx)

	api.Get("/preview/:template", h.Preview)
	api.Get("/templates", h.Templates)
	api.Post("/templates/select", h.SelectTemplate)
}

// sessionState is the envelope most endpoints answer with: the working
// record plus where the session currently stands.
type sessionState struct {
	Record   *model.Resume      `json:"record"`
	Errors   []model.FieldError `json:"errors,omitempty"`
	Mode     usecase.Mode       `json:"mode"`
	Template string             `json:"template"`
}

func (h *Handler) state() sessionState {
	return sessionState{
		Record:   h.editor.Record(),
		Errors:   h.editor.Errors(),
		Mode:     h.session.Mode(),
		Template: h.session.Template(),
	}
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.state())
}

// PutResume replaces the whole working record with the submitted field
// state. Unknown JSON keys are ignored; schema validation only gates
// submit, not editing.
func (h *Handler) PutResume(c *fiber.Ctx) error {
	var rec model.Resume
	if err := c.BodyParser(&rec); err != nil {
		return badRequest(c, "parse", "invalid resume payload")
	}
	h.editor.Replace(&rec)
	return c.JSON(h.state())
}

func (h *Handler) SubmitResume(c *fiber.Ctx) error {
	rec, err := h.editor.Submit()
	if err != nil {
		return errorResponse(c, err)
	}
	h.session.EnterPreview(rec)
	return c.JSON(h.state())
}

func (h *Handler) LoadSample(c *fiber.Ctx) error {
	h.editor.LoadSample()
	return c.JSON(h.state())
}

func (h *Handler) EnterEdit(c *fiber.Ctx) error {
	h.session.EnterEdit()
	return c.JSON(h.state())
}

type listEntryReq struct {
	FieldPath string `json:"fieldPath"`
	Index     int    `json:"index"`
}

func (h *Handler) InsertListEntry(c *fiber.Ctx) error {
	var req listEntryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "parse", "invalid payload")
	}
	if err := h.editor.Insert(req.FieldPath); err != nil {
		return badRequest(c, "field", err.Error())
	}
	return c.JSON(h.state())
}

func (h *Handler) RemoveListEntry(c *fiber.Ctx) error {
	var req listEntryReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "parse", "invalid payload")
	}
	if err := h.editor.RemoveAt(req.FieldPath, req.Index); err != nil {
		return badRequest(c, "field", err.Error())
	}
	return c.JSON(h.state())
}

func (h *Handler) ImportFile(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "format", "missing file upload")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "format", "unreadable file upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return badRequest(c, "format", "unreadable file upload")
	}

	rec, err := h.imp.ImportFile(fh.Filename, fh.Header.Get("Content-Type"), data)
	if err != nil {
		return errorResponse(c, err)
	}
	h.editor.Replace(rec)
	return c.JSON(h.state())
}

type importURLReq struct {
	URL string `json:"url"`
}

func (h *Handler) ImportURL(c *fiber.Ctx) error {
	var req importURLReq
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return badRequest(c, "parse", "missing url")
	}
	rec, err := h.imp.ImportURL(c.Context(), req.URL)
	if err != nil {
		return errorResponse(c, err)
	}
	h.editor.Replace(rec)
	return c.JSON(h.state())
}

func (h *Handler) RecentImports(c *fiber.Ctx) error {
	urls := h.recents.RecentURLs(c.Context())
	if urls == nil {
		urls = []string{}
	}
	return c.JSON(fiber.Map{"urls": urls})
}

func (h *Handler) ExportJSON(c *fiber.Ctx) error {
	raw, filename := importer.Export(h.editor.Record())
	c.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// previewRecord is what rendering endpoints work from: the committed
// record once one exists, the working record before the first submit.
func (h *Handler) previewRecord() *model.Resume {
	if rec := h.session.Committed(); rec != nil {
		return rec
	}
	return h.editor.Record()
}

func renderOptions(c *fiber.Ctx) render.Options {
	return render.Options{
		FullLinks:     c.QueryBool("fullLinks"),
		HideEducation: c.QueryBool("hideEducation"),
	}
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	rd, err := h.registry.Get(c.Params("template"))
	if err != nil {
		return badRequest(c, "template", err.Error())
	}
	html, err := rd.Render(h.previewRecord(), renderOptions(c))
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	rd, err := h.registry.Get(c.Params("template"))
	if err != nil {
		return badRequest(c, "template", err.Error())
	}
	rec := h.previewRecord()
	html, err := rd.Render(rec, renderOptions(c))
	if err != nil {
		return internalError(c, err)
	}
	pdf, err := h.pdf.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportName(rec, ".pdf")+`"`)
	return c.Send(pdf)
}

func (h *Handler) ExportDocx(c *fiber.Ctx) error {
	rd, err := h.registry.Get(c.Params("template"))
	if err != nil {
		return badRequest(c, "template", err.Error())
	}
	rec := h.previewRecord()
	out, err := rd.RenderDocx(rec, renderOptions(c))
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportName(rec, ".docx")+`"`)
	return c.Send(out)
}

func exportName(rec *model.Resume, ext string) string {
	base := strings.TrimSuffix(importer.ExportFilename(rec.PersonalInfo.Name), ".json")
	return base + ext
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"templates": h.registry.Names(),
		"selected":  h.session.Template(),
	})
}

type selectTemplateReq struct {
	Name string `json:"name"`
}

func (h *Handler) SelectTemplate(c *fiber.Ctx) error {
	var req selectTemplateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "parse", "invalid payload")
	}
	if err := h.session.SelectTemplate(req.Name); err != nil {
		return badRequest(c, "template", err.Error())
	}
	return c.JSON(fiber.Map{
		"templates": h.registry.Names(),
		"selected":  h.session.Template(),
	})
}

func badRequest(c *fiber.Ctx, kind, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"kind": kind, "error": msg})
}

func internalError(c *fiber.Ctx, err error) error {
	slog.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"kind": "internal", "error": "internal error"})
}

// errorResponse maps the import and validation error taxonomy onto
// status codes. Unknown errors fall through to 500.
func errorResponse(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	var perr *model.ParseError
	var ferr *importer.FormatError
	var serr *importer.SecurityError
	var terr *importer.TimeoutError
	var nerr *importer.NetworkError

	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"kind":   "validation",
			"error":  "resume failed validation",
			"fields": verr.Fields,
		})
	case errors.As(err, &perr):
		return badRequest(c, "parse", perr.Error())
	case errors.As(err, &ferr):
		return badRequest(c, "format", ferr.Error())
	case errors.As(err, &serr):
		return badRequest(c, "security", serr.Error())
	case errors.As(err, &terr):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"kind": "timeout", "error": terr.Error()})
	case errors.As(err, &nerr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"kind": "network", "error": nerr.Error()})
	}
	return internalError(c, err)
}
