package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"route-viz-server/graph"
	"route-viz-server/models"
	"route-viz-server/services"
)

// RouteHandler wires the HTTP surface to the route and history services.
type RouteHandler struct {
	routeService   *services.RouteService
	historyService *services.HistoryService
}

func NewRouteHandler(routeService *services.RouteService, historyService *services.HistoryService) *RouteHandler {
	return &RouteHandler{
		routeService:   routeService,
		historyService: historyService,
	}
}

func (h *RouteHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)
	r.POST("/calculate-route", h.CalculateRoute)
	r.POST("/add-route", h.AddRoute)
	r.GET("/history", h.GetHistory)
	r.DELETE("/history", h.ClearHistory)
}

func (h *RouteHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome! Route visualizer backend is running"})
}

func (h *RouteHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "message": "backend is running"})
}

// CalculateRoute computes a shortest path with a full settlement trace.
// Validation problems return 400, internal faults return an opaque 500, and
// "no path exists" is a 200 with success=false.
func (h *RouteHandler) CalculateRoute(c *gin.Context) {
	requestID := uuid.NewString()

	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:     models.ApiError{Code: "bad_request", Message: err.Error()},
			RequestID: requestID,
		})
		return
	}

	result, err := h.routeService.CalculateRoute(c.Request.Context(), req)
	if err != nil {
		if graph.IsValidation(err) {
			log.Warnf("rejected route request %s: %v", requestID, err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:     models.ApiError{Code: "invalid_request", Message: err.Error()},
				RequestID: requestID,
			})
			return
		}
		log.Errorf("route request %s failed: %v", requestID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:     models.ApiError{Code: "internal_error", Message: "route computation failed"},
			RequestID: requestID,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *RouteHandler) AddRoute(c *gin.Context) {
	var item models.RouteHistoryItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.historyService.Add(item)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Route added to history"})
}

func (h *RouteHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.historyService.List()})
}

func (h *RouteHandler) ClearHistory(c *gin.Context) {
	h.historyService.Clear()
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "History cleared"})
}
