package handlers

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/career-copilot/internal/models"
	"alfredoptarigan/career-copilot/internal/services"
)

const (
	codeFileTooLarge    = "FILE_TOO_LARGE"
	codeUnsupportedFile = "UNSUPPORTED_FILE"
	codePDFUnreadable   = "PDF_UNREADABLE"
)

// ProfileHandler turns an uploaded resume PDF into plain text the client can
// place in UserProfile.Summary. Nothing is written to disk.
type ProfileHandler struct {
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewProfileHandler(pdfParser services.PDFParserService, maxFileSize int64) *ProfileHandler {
	return &ProfileHandler{
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleResumeText handles POST /profile/resume-text
func (h *ProfileHandler) HandleResumeText(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeMissingParameters, "Please upload 'resume' as a PDF file")
	}

	if file.Size > h.maxFileSize {
		return errorJSON(c, fiber.StatusBadRequest, codeFileTooLarge,
			fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return errorJSON(c, fiber.StatusBadRequest, codeUnsupportedFile, "Only PDF files are supported")
	}

	src, err := file.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to open uploaded file")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	content, err := h.pdfParser.ExtractTextFromBytes(data)
	if err != nil {
		message := "Failed to read PDF"
		if errors.Is(err, services.ErrNoPDFText) {
			message = "No text content found in PDF"
		}
		return errorJSON(c, fiber.StatusUnprocessableEntity, codePDFUnreadable, message)
	}

	return c.JSON(models.ResumeTextResponse{
		Text:      content.Text,
		PageCount: content.PageCount,
		Filename:  file.Filename,
	})
}
