package api

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/insightdelivered/mcc-extractor/internal/extractor"
	"github.com/insightdelivered/mcc-extractor/internal/models"
)

// Version is reported by the health endpoint and extraction responses.
const Version = "1.0.0"

// ExtractResponse is the JSON response from the /api/extract endpoint.
type ExtractResponse struct {
	Success     bool              `json:"success"`
	Error       string            `json:"error,omitempty"`
	Method      string            `json:"method,omitempty"`
	Codes       map[string]string `json:"codes"`
	Count       int               `json:"count"`
	Pages       []int             `json:"pages,omitempty"`
	FailedPages []int             `json:"failedPages,omitempty"`
	Version     string            `json:"version,omitempty"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 32 << 20, // uploads capped at 32MB
	})

	app.Get("/api/health", HandleHealth)
	app.Post("/api/extract", HandleExtract)

	return app
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": Version,
	})
}

// HandleExtract accepts a multipart PDF upload plus optional start, end
// and method form values, runs the extraction pipeline over it, and
// returns the code mapping with per-page results.
func HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	tmp, err := os.CreateTemp("", "mcc-upload-*.pdf")
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to create temp file.")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to save uploaded file.")
	}

	start := formInt(c, "start")
	end := formInt(c, "end")
	method := models.ParseMethod(c.FormValue("method", "lattice"))

	ext := extractor.New()
	// Progress text is CLI output, not part of the API response.
	ext.Out = io.Discard

	rangeStart, rangeEnd := ext.ResolvePageRange(tmpPath, start, end)
	report := ext.Run(tmpPath, rangeStart, rangeEnd, method)

	return c.JSON(ExtractResponse{
		Success:     true,
		Method:      string(method),
		Codes:       report.Codes,
		Count:       report.TotalCodes(),
		Pages:       report.SuccessfulPages(),
		FailedPages: report.FailedPages(),
		Version:     Version,
	})
}

// formInt reads an optional positive integer form value; anything else
// counts as unset.
func formInt(c *fiber.Ctx, key string) int {
	v, err := strconv.Atoi(c.FormValue(key))
	if err != nil || v < 1 {
		return 0
	}
	return v
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ExtractResponse{
		Success: false,
		Error:   msg,
	})
}
