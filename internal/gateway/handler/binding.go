package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"sonarassist/internal/gateway/service/binding"
)

// BindingHandler receives binding-suggestion events from the suggestion
// generator and feeds them to the decision engine.
type BindingHandler struct {
	svc *binding.Service
}

func NewBindingHandler(svc *binding.Service) *BindingHandler {
	return &BindingHandler{svc: svc}
}

type suggestBindingResponse struct {
	Accepted bool `json:"accepted"`
}

// HandleSuggestBinding accepts a SuggestBindingParams document and runs the
// decision engine asynchronously: the engine may suspend on user prompts for
// an arbitrary time, which must not hold the event sender's request open.
func (h *BindingHandler) HandleSuggestBinding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var params binding.SuggestParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	go func() {
		if err := h.svc.CheckConditionsAndAttemptAutobinding(context.Background(), params); err != nil {
			log.Printf("binding suggestion check failed: %v", err)
		}
	}()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(suggestBindingResponse{Accepted: true})
}
