// Package server exposes simulations over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mutree.dev/pkg/mutree/internal/adapter"
	"mutree.dev/pkg/mutree/internal/domain"
)

// Simulator runs simulations without any terminal output.
type Simulator interface {
	Simulate(ctx context.Context, args domain.RunArgs) ([]domain.RunResult, error)
}

// DefaultKeptRuns is how many finished runs Handlers keeps in memory.
const DefaultKeptRuns = 32

// Handlers serves the HTTP API. The most recent finished runs are kept in
// memory so their graph can be rendered and their files downloaded.
type Handlers struct {
	sim      Simulator
	fs       adapter.OutputFSAdapter
	defaults domain.RunArgs
	keep     int

	mu     sync.RWMutex
	runs   map[string]domain.RunResult
	order  []string // run ids, oldest first
	latest string
}

// NewHandlers creates Handlers. Every run starts from defaults with the
// request's words as seeds and is written to its own directory under
// defaults.Output.
func NewHandlers(sim Simulator, fs adapter.OutputFSAdapter, defaults domain.RunArgs) *Handlers {
	defaults.Runs = 1
	defaults.Isolate = true
	defaults.Corpus = ""

	return &Handlers{
		sim:      sim,
		fs:       fs,
		defaults: defaults,
		keep:     DefaultKeptRuns,
		runs:     make(map[string]domain.RunResult),
	}
}

// remember stores result as the latest run and forgets the oldest runs
// beyond the keep limit. Their files stay on disk.
func (h *Handlers) remember(result domain.RunResult) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.runs[result.ID] = result
	h.order = append(h.order, result.ID)
	h.latest = result.ID

	for len(h.order) > h.keep {
		delete(h.runs, h.order[0])
		h.order = h.order[1:]
	}
}

// HandleRun handles POST /api/runs.
//
// Response:
//
//	200 OK: RunResponse
//	400 Bad Request: missing words or invalid parameters
//	500 Internal Server Error: the run failed
func (h *Handlers) HandleRun(c *gin.Context) {
	logger := slog.With("request_id", requestID(c), "handler", "HandleRun")

	var req RunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})

		return
	}

	words := strings.Fields(req.Words)
	if len(words) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "words must contain at least one word",
			Code:  "MISSING_WORDS",
		})

		return
	}

	args := h.defaults
	args.Seeds = words

	if req.Generations > 0 {
		args.Generations = req.Generations
	}

	if req.Seed != 0 {
		args.RandomSeed = req.Seed
	}

	results, err := h.sim.Simulate(c.Request.Context(), args)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errCode := "RUN_FAILED"

		if errors.Is(err, domain.ErrInputInvalid) {
			statusCode = http.StatusBadRequest
			errCode = "INVALID_WORDS"
		} else if errors.Is(err, domain.ErrInvalidConfig) {
			statusCode = http.StatusBadRequest
			errCode = "INVALID_PARAMETERS"
		}

		logger.Error("Run failed", "error", err)
		c.JSON(statusCode, ErrorResponse{
			Error: err.Error(),
			Code:  errCode,
		})

		return
	}

	result := results[0]

	h.remember(result)

	logger.Info("Run finished", "id", result.ID, "nodes", result.Graph.NodeCount(), "edges", result.Graph.EdgeCount())

	c.JSON(http.StatusOK, newRunResponse(result))
}

// HandleDownload handles GET /download/:filename. The optional run query
// parameter selects a run; otherwise the latest run is used, or the output
// directory itself before any run.
func (h *Handlers) HandleDownload(c *gin.Context) {
	name := c.Param("filename")
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid file name",
			Code:  "INVALID_FILENAME",
		})

		return
	}

	dir, ok := h.runDir(c)
	if !ok {
		return
	}

	path := filepath.Join(dir, name)

	info, err := h.fs.FileInfo(path)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "file not found: " + name,
			Code:  "NOT_FOUND",
		})

		return
	}

	c.FileAttachment(path, name)
}

// HandleGraph handles GET /graph and renders the run's graph as DOT.
func (h *Handlers) HandleGraph(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", adapter.EncodeDOT(result.Graph))
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	h.mu.RLock()
	runs := len(h.runs)
	h.mu.RUnlock()

	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Runs: runs})
}

// runDir resolves the directory to serve files from. It writes the error
// reply itself and returns false when the run query is unusable.
func (h *Handlers) runDir(c *gin.Context) (string, bool) {
	if c.Query("run") == "" {
		h.mu.RLock()
		latest, ok := h.runs[h.latest]
		h.mu.RUnlock()

		if ok {
			return latest.Dir, true
		}

		return h.defaults.Output, true
	}

	result, ok := h.run(c)
	if !ok {
		return "", false
	}

	return result.Dir, true
}

// run resolves the run named by the run query parameter, or the latest run.
func (h *Handlers) run(c *gin.Context) (domain.RunResult, bool) {
	id := c.Query("run")

	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "run must be a UUID",
				Code:  "INVALID_RUN_ID",
			})

			return domain.RunResult{}, false
		}
	}

	h.mu.RLock()
	if id == "" {
		id = h.latest
	}

	result, ok := h.runs[id]
	h.mu.RUnlock()

	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: "run not found",
			Code:  "NOT_FOUND",
		})

		return domain.RunResult{}, false
	}

	return result, true
}
