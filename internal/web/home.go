package web

import (
	"net/http"

	"textlens/internal/apiclient"
)

type homeData struct {
	baseData
	Health apiclient.Health
}

// Home renders the status screen. The health check never fails: a degraded
// snapshot is rendered when the collaborator is unreachable.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	data := homeData{
		baseData: h.base("Home"),
		Health:   h.Client.HealthCheck(r.Context()),
	}
	h.render(w, http.StatusOK, "home", data)
}
