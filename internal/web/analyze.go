package web

import (
	"net/http"
	"strings"

	"textlens/internal/apiclient"
)

type analyzeData struct {
	baseData
	Text       string
	Error      string
	NeedsLogin bool
	Result     *apiclient.Analysis
}

// AnalyzeForm renders the empty submission form.
func (h *Handler) AnalyzeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "analyze", analyzeData{baseData: h.base("Analyze")})
}

// AnalyzeSubmit posts the text to the collaborator and renders the result,
// or the mapped failure message inline.
func (h *Handler) AnalyzeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := strings.TrimSpace(r.PostFormValue("text"))

	data := analyzeData{baseData: h.base("Analyze"), Text: text}
	if text == "" {
		data.Error = "Please enter some text to analyze"
		h.render(w, http.StatusOK, "analyze", data)
		return
	}

	result, err := h.Client.AnalyzeText(r.Context(), text)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusUnauthorized) {
			data.Error = "You are not signed in"
			data.NeedsLogin = true
		} else {
			data.Error = apiclient.UserMessage(err)
		}
		h.render(w, http.StatusOK, "analyze", data)
		return
	}

	h.Cache.Put(result)
	data.Result = &result
	h.render(w, http.StatusOK, "analyze", data)
}
