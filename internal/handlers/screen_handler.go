package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"recruitai/resume-screener/internal/models"
	"recruitai/resume-screener/internal/services"
)

type ScreenHandler struct {
	screener    services.ScreenerService
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewScreenHandler(
	screener services.ScreenerService,
	extractor services.ExtractorService,
	maxFileSize int64,
) *ScreenHandler {
	return &ScreenHandler{
		screener:    screener,
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleScreen handles POST /screen. The resume arrives either as
// resume_text in a JSON body or as an uploaded file in a multipart form.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	jobDescription, resumeText, err := h.parseRequest(c)
	if err != nil {
		return h.errorResponse(c, err)
	}

	result, err := h.screener.Screen(c.UserContext(), jobDescription, resumeText)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.JSON(result)
}

func (h *ScreenHandler) parseRequest(c *fiber.Ctx) (string, string, error) {
	contentType := string(c.Request().Header.ContentType())
	if strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return h.parseMultipart(c)
	}

	var req models.ScreeningRequest
	if err := c.BodyParser(&req); err != nil {
		return "", "", fmt.Errorf("%w: invalid request payload", services.ErrValidation)
	}

	return req.JobDescription, req.ResumeText, nil
}

func (h *ScreenHandler) parseMultipart(c *fiber.Ctx) (string, string, error) {
	jobDescription := c.FormValue("job_description")

	file, err := c.FormFile("resume")
	if err != nil {
		return "", "", fmt.Errorf("%w: resume file is required", services.ErrValidation)
	}

	if file.Size > h.maxFileSize {
		return "", "", fmt.Errorf("%w: resume file too large, max size: %d bytes", services.ErrValidation, h.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("%w: failed to open uploaded file", services.ErrExtraction)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", fmt.Errorf("%w: failed to read uploaded file", services.ErrExtraction)
	}

	resumeText, err := h.extractor.ExtractText(file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		return "", "", err
	}

	return jobDescription, resumeText, nil
}

func (h *ScreenHandler) errorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrExtraction):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrUpstream), errors.Is(err, services.ErrParse):
		status = fiber.StatusBadGateway
	}

	if status >= fiber.StatusInternalServerError {
		log.Printf("❌ Screening failed: %v", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
