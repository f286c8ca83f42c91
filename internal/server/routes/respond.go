package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/loreforge/loreforge/backend/internal/queue"
	"github.com/loreforge/loreforge/backend/internal/server/middleware"
	"github.com/loreforge/loreforge/backend/pkg/graph"
	"github.com/loreforge/loreforge/backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// errorJSON maps a storage failure onto its HTTP response. Domain sentinels
// get their dedicated status; anything else is logged and answered as a
// plain 500 without leaking internals.
func errorJSON(c echo.Context, err error) error {
	switch {
	case errors.Is(err, graph.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Message: "Not found"})
	case errors.Is(err, graph.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, errorResponse{Message: "Unauthorized"})
	case errors.Is(err, graph.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorResponse{Message: "Forbidden"})
	case errors.Is(err, graph.ErrDuplicate):
		return c.JSON(http.StatusConflict, errorResponse{Message: "Already exists"})
	case errors.Is(err, graph.ErrHasDependents):
		return c.JSON(http.StatusConflict, errorResponse{Message: "Has dependent records"})
	case errors.Is(err, graph.ErrOnlyOwner):
		return c.JSON(http.StatusConflict, errorResponse{Message: "Cannot remove the only owner"})
	case errors.Is(err, graph.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}
	logger.Error("Storage failure", "path", c.Path(), "err", err)
	return c.JSON(http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
}

// listOptions reads pagination and sorting from the query string. Values are
// clamped later by the storage layer, so bad numbers simply fall back to
// defaults here.
func listOptions(c echo.Context) graph.ListOptions {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return graph.ListOptions{
		Page:      page,
		Limit:     limit,
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: graph.SortOrder(c.QueryParam("sort_order")),
	}
}

// publishPurge queues the hard delete of an already soft-deleted node. The
// record is gone from every read either way, so a publish failure is logged
// and the request still succeeds; the worker's sweep picks the node up later.
func publishPurge(c echo.Context, nodeID string, kind graph.NodeKind) {
	msg, err := json.Marshal(queue.PurgeMsg{NodeID: nodeID, Kind: string(kind)})
	if err != nil {
		logger.Error("Failed to marshal purge message", "node_id", nodeID, "err", err)
		return
	}
	ch := c.(*middleware.AppContext).App.Queue
	if err := queue.PublishFIFO(ch, queue.PurgeQueue, msg); err != nil {
		logger.Error("Failed to publish to purge_queue", "node_id", nodeID, "err", err)
	}
}
