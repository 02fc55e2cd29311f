package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"textlens/internal/apiclient"
)

// historyPageSize is how many analyses one history page shows.
const historyPageSize = 10

type historyData struct {
	baseData
	Items    []apiclient.Analysis
	Page     int
	PrevPage int
	NextPage int
	HasMore  bool
}

type detailData struct {
	baseData
	Analysis *apiclient.Analysis
	Error    string
}

// History renders one page of past analyses, most recent first as the
// collaborator delivers them. Failures degrade to the empty state.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	items := h.Client.GetHistory(r.Context(), page, historyPageSize)
	h.Cache.PutAll(items)

	data := historyData{
		baseData: h.base("History"),
		Items:    items,
		Page:     page,
		PrevPage: page - 1,
		NextPage: page + 1,
		HasMore:  len(items) == historyPageSize,
	}
	h.render(w, http.StatusOK, "history", data)
}

// HistoryDetail renders one analysis. The cache answers when it can;
// ?refresh=1 forces a collaborator fetch. Unknown ids render an inline
// not-found message.
func (h *Handler) HistoryDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data := detailData{baseData: h.base("Analysis")}

	if r.URL.Query().Get("refresh") != "1" {
		if cached, ok := h.Cache.Get(id); ok {
			data.Analysis = &cached
			h.render(w, http.StatusOK, "detail", data)
			return
		}
	}

	analysis, err := h.Client.GetAnalysisByID(r.Context(), id)
	if err != nil {
		status := http.StatusOK
		if apiclient.IsStatus(err, http.StatusNotFound) {
			data.Error = "This analysis does not exist"
			status = http.StatusNotFound
		} else {
			data.Error = apiclient.UserMessage(err)
		}
		h.render(w, status, "detail", data)
		return
	}

	h.Cache.Put(analysis)
	data.Analysis = &analysis
	h.render(w, http.StatusOK, "detail", data)
}
