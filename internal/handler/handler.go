package handler

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"blended-fee-engine/internal/engine"
	"blended-fee-engine/internal/format"
	"blended-fee-engine/internal/inputs"
	"blended-fee-engine/internal/logger"
	"blended-fee-engine/internal/metrics"
	"blended-fee-engine/internal/model"
	"blended-fee-engine/internal/mutations"
)

const contentTypeJSON = "application/json"

type Handler struct {
	log          logger.Logger
	formatter    *format.Formatter
	maxMutations int
	promHandler  fasthttp.RequestHandler
}

func New(log logger.Logger, f *format.Formatter, maxMutations int) *Handler {
	if f == nil {
		f = format.Default()
	}
	return &Handler{
		log:          log,
		formatter:    f,
		maxMutations: maxMutations,
		promHandler:  fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()),
	}
}

// Route dispatches on path and method.
func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/calculate":
		h.HandleCalculation(ctx)
	case "/defaults":
		h.HandleDefaults(ctx)
	case "/healthz":
		h.HandleHealth(ctx)
	case "/metrics":
		h.promHandler(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) HandleCalculation(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		metrics.RejectedRequests.WithLabelValues("method").Inc()
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		metrics.RejectedRequests.WithLabelValues("body").Inc()
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if n := len(req.CalculationInstructions.Mutations); h.maxMutations > 0 && n > h.maxMutations {
		metrics.RejectedRequests.WithLabelValues("too_many_mutations").Inc()
		writeError(ctx, fasthttp.StatusBadRequest,
			fmt.Sprintf("Too many mutations: %d exceeds the limit of %d", n, h.maxMutations))
		return
	}

	start := time.Now()
	resp := engine.Process(&req, h.formatter)
	observe(resp, time.Since(start))

	log := h.log.With(map[string]interface{}{
		"calculationId": resp.CalculationMetadata.CalculationID,
		"scenarioId":    req.ScenarioID,
	})
	for _, m := range resp.CalculationResult.Messages {
		if m.Level == model.LevelCritical {
			log.Warn("calculation stopped", map[string]interface{}{
				"code":    m.Code,
				"message": m.Message,
			})
		}
	}
	log.Info("calculation completed", map[string]interface{}{
		"outcome":    resp.CalculationMetadata.CalculationOutcome,
		"mutations":  len(resp.CalculationResult.Mutations),
		"messages":   len(resp.CalculationResult.Messages),
		"durationMs": resp.CalculationMetadata.CalculationDurationMs,
	})

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

// HandleDefaults returns the default snapshot with its metrics.
func (h *Handler) HandleDefaults(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, engine.Evaluate(inputs.Defaults(), h.formatter))
}

func (h *Handler) HandleHealth(ctx *fasthttp.RequestCtx) {
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
}

func observe(resp *model.CalculationResponse, elapsed time.Duration) {
	metrics.CalculationsTotal.WithLabelValues(resp.CalculationMetadata.CalculationOutcome).Inc()
	metrics.CalculationDuration.Observe(elapsed.Seconds())

	for _, pm := range resp.CalculationResult.Mutations {
		name := pm.Mutation.MutationDefinitionName
		if _, ok := mutations.Get(name); !ok {
			name = "unknown"
		}
		metrics.MutationsApplied.WithLabelValues(name).Inc()
	}
	for _, m := range resp.CalculationResult.Messages {
		if m.Level == model.LevelWarning {
			metrics.MutationWarnings.WithLabelValues(m.Code).Inc()
		}
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Encode response: "+err.Error())
		return
	}
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	b, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType(contentTypeJSON)
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}
