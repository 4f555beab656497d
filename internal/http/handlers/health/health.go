package health

import (
	"net/http"
	"time"

	"enerbill/internal/http/handlers/response"
)

type Handler struct {
	now func() time.Time
}

func New(now func() time.Time) *Handler {
	if now == nil {
		panic("Argument now must not be nil.")
	}
	return &Handler{now: now}
}

type Result struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(
		rw,
		Result{Status: "ok", Timestamp: h.now().UTC().Format(time.RFC3339)},
		http.StatusOK,
	)
}
