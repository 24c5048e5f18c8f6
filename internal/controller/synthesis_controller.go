// FILE: internal/controller/synthesis_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"chem-synthesis-be/internal/constant"
	"chem-synthesis-be/internal/dto"
	"chem-synthesis-be/internal/pkg/serverutils"
	"chem-synthesis-be/internal/service"
	"chem-synthesis-be/pkg/llm"
)

type ISynthesisController interface {
	RegisterRoutes(r fiber.Router)
	GetSynthesis(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
	Root(ctx *fiber.Ctx) error
}

type synthesisController struct {
	service service.ISynthesisService
}

func NewSynthesisController(service service.ISynthesisService) ISynthesisController {
	return &synthesisController{service: service}
}

func (c *synthesisController) RegisterRoutes(r fiber.Router) {
	r.Get("/synthesis/:cas_number", c.GetSynthesis)
	r.Get("/health", c.Health)
	r.Get("/", c.Root)
}

// GetSynthesis validates the CAS path parameter, then runs the lookup
// pipeline. Validation failures never reach the upstream vendor. The CAS
// number is echoed back exactly as received.
func (c *synthesisController) GetSynthesis(ctx *fiber.Ctx) error {
	var req dto.SynthesisRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request path"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).
			JSON(serverutils.ErrorResponse(400, "Invalid CAS number format. Expected format: XXXXXXX-XX-X"))
	}

	res, err := c.service.Lookup(ctx.Context(), req.CasNumber)
	if err != nil {
		return c.mapLookupError(ctx, err)
	}

	return ctx.JSON(res)
}

func (c *synthesisController) mapLookupError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNoRecordsFound) {
		return ctx.Status(fiber.StatusNotFound).
			JSON(serverutils.ErrorResponse(404, "No synthesis information found for the provided CAS number"))
	}

	var upstreamErr *llm.ErrUpstream
	if errors.As(err, &upstreamErr) {
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(serverutils.ErrorResponseDetail(500, "Failed to retrieve synthesis information",
				fmt.Sprintf("upstream status %d: %s", upstreamErr.StatusCode, upstreamErr.Body)))
	}

	return ctx.Status(fiber.StatusInternalServerError).
		JSON(serverutils.ErrorResponseDetail(500, "Failed to retrieve synthesis information", err.Error()))
}

func (c *synthesisController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status:  "healthy",
		Service: "synthesis-api",
	})
}

func (c *synthesisController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.ServiceInfoResponse{
		Service: constant.ServiceName,
		Version: constant.ServiceVersion,
		Endpoints: map[string]string{
			"synthesis": "/synthesis/<cas_number>",
			"health":    "/health",
		},
		Example: "/synthesis/64-17-5",
	})
}
