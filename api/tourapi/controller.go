// Package tourapi handles tour requests.
package tourapi

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/orienteer/service"
)

// MaxBodyBytes caps the size of a tour request body.
const MaxBodyBytes = 64 << 10

// Solver answers a grid text with a tour outcome. *service.Tours implements it.
type Solver interface {
	Solve(ctx context.Context, text string) (service.Outcome, error)
}

// Controller serves POST /tours.
type Controller struct {
	solver Solver
	logger *log.Logger
}

// NewController initializes a Controller. logger may be nil.
func NewController(s Solver, logger *log.Logger) *Controller {
	return &Controller{solver: s, logger: logger}
}

// Register registers the tour routes.
func (c *Controller) Register(route *gin.RouterGroup) {
	tours := route.Group("/tours")
	{
		tours.POST("", c.solve)
	}
}

// solve handles tour requests.
func (c *Controller) solve(ctx *gin.Context) {
	var request TourRequest
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, MaxBodyBytes)
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.New()
	out, err := c.solver.Solve(ctx.Request.Context(), request.Grid)
	if errors.Is(err, service.ErrBadGrid) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[API] [ERROR] tour %s: %v", id, err)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving tour"})
		return
	}

	response := &TourResponse{
		ID:     id.String(),
		Length: out.Length,
		Solved: out.Solved(),
		Order:  make([]Point, len(out.Order)),
		Cached: out.Cached,
	}
	for i, cell := range out.Order {
		response.Order[i] = Point{X: cell.X, Y: cell.Y}
	}

	ctx.JSON(http.StatusOK, response)
}
