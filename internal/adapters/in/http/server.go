// Package http exposes the work-order operations over a JSON API.
// It coordinates between HTTP handlers and application use cases, mapping
// the error taxonomy onto status codes: not-found lookups to 404, invalid
// input to 400, illegal transitions and version conflicts to 409.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"steelflow/internal/core/application/usecases/commands"
	"steelflow/internal/core/application/usecases/queries"
	"steelflow/internal/core/domain/model/kernel"
	"steelflow/internal/core/domain/model/workorder"
	"steelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the work-order API.
type Server struct {
	// Command handlers
	createHandler           commands.CreateWorkOrderCommandHandler
	scheduleHandler         commands.ScheduleWorkOrderCommandHandler
	startHandler            commands.StartWorkOrderCommandHandler
	pauseHandler            commands.PauseWorkOrderCommandHandler
	resumeHandler           commands.ResumeWorkOrderCommandHandler
	completeHandler         commands.CompleteWorkOrderCommandHandler
	cancelHandler           commands.CancelWorkOrderCommandHandler
	adjustHandler           commands.AdjustLineItemCommandHandler
	reallocateHandler       commands.ReallocateWorkOrderCommandHandler
	recordProductionHandler commands.RecordProductionCommandHandler

	// Query handlers
	progressHandler queries.GetWorkOrderProgressQueryHandler
	activeHandler   queries.GetActiveWorkOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createHandler commands.CreateWorkOrderCommandHandler,
	scheduleHandler commands.ScheduleWorkOrderCommandHandler,
	startHandler commands.StartWorkOrderCommandHandler,
	pauseHandler commands.PauseWorkOrderCommandHandler,
	resumeHandler commands.ResumeWorkOrderCommandHandler,
	completeHandler commands.CompleteWorkOrderCommandHandler,
	cancelHandler commands.CancelWorkOrderCommandHandler,
	adjustHandler commands.AdjustLineItemCommandHandler,
	reallocateHandler commands.ReallocateWorkOrderCommandHandler,
	recordProductionHandler commands.RecordProductionCommandHandler,
	progressHandler queries.GetWorkOrderProgressQueryHandler,
	activeHandler queries.GetActiveWorkOrdersQueryHandler,
) *Server {
	return &Server{
		createHandler:           createHandler,
		scheduleHandler:         scheduleHandler,
		startHandler:            startHandler,
		pauseHandler:            pauseHandler,
		resumeHandler:           resumeHandler,
		completeHandler:         completeHandler,
		cancelHandler:           cancelHandler,
		adjustHandler:           adjustHandler,
		reallocateHandler:       reallocateHandler,
		recordProductionHandler: recordProductionHandler,
		progressHandler:         progressHandler,
		activeHandler:           activeHandler,
	}
}

// RegisterRoutes wires the API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/work-orders", s.CreateWorkOrder)
	api.GET("/work-orders/active", s.GetActiveWorkOrders)
	api.GET("/work-orders/:id/progress", s.GetWorkOrderProgress)
	api.POST("/work-orders/:id/schedule", s.ScheduleWorkOrder)
	api.POST("/work-orders/:id/start", s.StartWorkOrder)
	api.POST("/work-orders/:id/pause", s.PauseWorkOrder)
	api.POST("/work-orders/:id/resume", s.ResumeWorkOrder)
	api.POST("/work-orders/:id/complete", s.CompleteWorkOrder)
	api.POST("/work-orders/:id/cancel", s.CancelWorkOrder)
	api.POST("/work-orders/:id/reallocate", s.ReallocateWorkOrder)
	api.PATCH("/work-orders/:id/line-items/:sequence", s.AdjustLineItem)
	api.POST("/work-orders/:id/line-items/:sequence/production", s.RecordProduction)

	e.GET("/health", s.Health)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateWorkOrderRequest is the body for POST /work-orders.
type CreateWorkOrderRequest struct {
	MachineID    string    `json:"machineId"`
	CoilTag      string    `json:"coilTag"`
	DueDate      time.Time `json:"dueDate"`
	Priority     int       `json:"priority"`
	Instructions string    `json:"instructions"`
	CreatedBy    string    `json:"createdBy"`
}

// CreateWorkOrderResponse returns the identifier of the created work order.
type CreateWorkOrderResponse struct {
	WorkOrderID string `json:"workOrderId"`
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	machineID, err := kernel.UUIDFromString(req.MachineID)
	if err != nil {
		return badRequest(ctx, "Invalid machine id: "+err.Error())
	}

	workOrderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		workOrderID, machineID, req.CoilTag, req.DueDate, req.Priority, req.Instructions, req.CreatedBy)
	if err != nil {
		return badRequest(ctx, "Invalid work order data: "+err.Error())
	}

	if err = s.createHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateWorkOrderResponse{WorkOrderID: workOrderID.String()})
}

// ScheduleWorkOrderRequest is the body for POST /work-orders/:id/schedule.
type ScheduleWorkOrderRequest struct {
	ScheduledStart *time.Time `json:"scheduledStart,omitempty"`
	ScheduledEnd   *time.Time `json:"scheduledEnd,omitempty"`
}

// ScheduleWorkOrder handles POST /api/v1/work-orders/:id/schedule.
func (s *Server) ScheduleWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req ScheduleWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleWorkOrderCommand(workOrderID, req.ScheduledStart, req.ScheduledEnd)
	if err != nil {
		return badRequest(ctx, "Invalid schedule data: "+err.Error())
	}

	if err = s.scheduleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OperatorRequest carries the acting operator for lifecycle transitions.
type OperatorRequest struct {
	Operator string `json:"operator"`
}

// StartWorkOrder handles POST /api/v1/work-orders/:id/start.
func (s *Server) StartWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req OperatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartWorkOrderCommand(workOrderID, req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	if err = s.startHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PauseWorkOrderRequest is the body for POST /work-orders/:id/pause.
type PauseWorkOrderRequest struct {
	Reason   string `json:"reason"`
	Operator string `json:"operator"`
}

// PauseWorkOrder handles POST /api/v1/work-orders/:id/pause.
func (s *Server) PauseWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req PauseWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPauseWorkOrderCommand(workOrderID, req.Reason, req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid pause data: "+err.Error())
	}

	if err = s.pauseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeWorkOrder handles POST /api/v1/work-orders/:id/resume.
func (s *Server) ResumeWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req OperatorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewResumeWorkOrderCommand(workOrderID, req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid resume data: "+err.Error())
	}

	if err = s.resumeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteWorkOrderRequest is the body for POST /work-orders/:id/complete.
type CompleteWorkOrderRequest struct {
	ActualWeightLbs *float64 `json:"actualWeightLbs,omitempty"`
	Notes           string   `json:"notes"`
	Operator        string   `json:"operator"`
}

// CompleteWorkOrder handles POST /api/v1/work-orders/:id/complete.
func (s *Server) CompleteWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req CompleteWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteWorkOrderCommand(workOrderID, req.ActualWeightLbs, req.Notes, req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelWorkOrderRequest is the body for POST /work-orders/:id/cancel.
type CancelWorkOrderRequest struct {
	Notes    string `json:"notes"`
	Operator string `json:"operator"`
}

// CancelWorkOrder handles POST /api/v1/work-orders/:id/cancel.
func (s *Server) CancelWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	var req CancelWorkOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelWorkOrderCommand(workOrderID, req.Notes, req.Operator)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReallocateWorkOrder handles POST /api/v1/work-orders/:id/reallocate.
func (s *Server) ReallocateWorkOrder(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	cmd, err := commands.NewReallocateWorkOrderCommand(workOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid reallocation request: "+err.Error())
	}

	if err = s.reallocateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdjustLineItemRequest is the body for PATCH /work-orders/:id/line-items/:sequence.
// Exactly one of quantity and weightLbs must be present.
type AdjustLineItemRequest struct {
	Quantity  *int     `json:"quantity,omitempty"`
	WeightLbs *float64 `json:"weightLbs,omitempty"`
}

// AdjustLineItem handles PATCH /api/v1/work-orders/:id/line-items/:sequence.
func (s *Server) AdjustLineItem(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	sequence, err := strconv.Atoi(ctx.Param("sequence"))
	if err != nil {
		return badRequest(ctx, "Invalid line item sequence")
	}

	var req AdjustLineItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAdjustLineItemCommand(workOrderID, sequence, req.Quantity, req.WeightLbs)
	if err != nil {
		return badRequest(ctx, "Invalid adjustment data: "+err.Error())
	}

	if err = s.adjustHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordProductionRequest is the body for POST .../line-items/:sequence/production.
type RecordProductionRequest struct {
	Quantity int `json:"quantity"`
}

// RecordProduction handles POST /api/v1/work-orders/:id/line-items/:sequence/production.
func (s *Server) RecordProduction(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	sequence, err := strconv.Atoi(ctx.Param("sequence"))
	if err != nil {
		return badRequest(ctx, "Invalid line item sequence")
	}

	var req RecordProductionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordProductionCommand(workOrderID, sequence, req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid production data: "+err.Error())
	}

	if err = s.recordProductionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// WorkOrderProgressResponse is the body for GET /work-orders/:id/progress.
type WorkOrderProgressResponse struct {
	WorkOrderID       string     `json:"workOrderId"`
	Status            string     `json:"status"`
	TotalPlannedLbs   float64    `json:"totalPlannedLbs"`
	ProcessedLbs      float64    `json:"processedLbs"`
	ProgressPercent   float64    `json:"progressPercent"`
	ElapsedSeconds    int64      `json:"elapsedSeconds"`
	RateLbsPerHour    float64    `json:"rateLbsPerHour"`
	EstimatedComplete *time.Time `json:"estimatedComplete,omitempty"`
}

// GetWorkOrderProgress handles GET /api/v1/work-orders/:id/progress.
func (s *Server) GetWorkOrderProgress(ctx echo.Context) error {
	workOrderID, err := pathWorkOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid work order id")
	}

	query, err := queries.NewGetWorkOrderProgressQuery(workOrderID)
	if err != nil {
		return badRequest(ctx, "Invalid progress query: "+err.Error())
	}

	progress, err := s.progressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkOrderProgressResponse{
		WorkOrderID:       progress.WorkOrderID.String(),
		Status:            progress.Status,
		TotalPlannedLbs:   progress.TotalPlannedLbs,
		ProcessedLbs:      progress.ProcessedLbs,
		ProgressPercent:   progress.ProgressPercent,
		ElapsedSeconds:    progress.ElapsedSeconds,
		RateLbsPerHour:    progress.RateLbsPerHour,
		EstimatedComplete: progress.EstimatedComplete,
	})
}

// ActiveWorkOrderResponse is one row of GET /work-orders/active.
type ActiveWorkOrderResponse struct {
	WorkOrderID     string    `json:"workOrderId"`
	TagNumber       string    `json:"tagNumber"`
	Status          string    `json:"status"`
	Priority        int       `json:"priority"`
	DueDate         time.Time `json:"dueDate"`
	TotalPlannedLbs float64   `json:"totalPlannedLbs"`
	ProcessedLbs    float64   `json:"processedLbs"`
}

// GetActiveWorkOrders handles GET /api/v1/work-orders/active.
func (s *Server) GetActiveWorkOrders(ctx echo.Context) error {
	query := queries.NewGetActiveWorkOrdersQuery()

	workOrders, err := s.activeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]ActiveWorkOrderResponse, len(workOrders))
	for i, row := range workOrders {
		response[i] = ActiveWorkOrderResponse{
			WorkOrderID:     row.WorkOrderID.String(),
			TagNumber:       row.TagNumber,
			Status:          row.Status,
			Priority:        row.Priority,
			DueDate:         row.DueDate,
			TotalPlannedLbs: row.TotalPlannedLbs,
			ProcessedLbs:    row.ProcessedLbs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathWorkOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a use-case error onto the API's status codes.
func domainError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, workorder.ErrIllegalTransition),
		errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, workorder.ErrNoLineItems),
		errors.Is(err, workorder.ErrMachineNotResolved),
		errors.Is(err, workorder.ErrCoilNotResolved),
		errors.Is(err, workorder.ErrLineItemNotFound):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
