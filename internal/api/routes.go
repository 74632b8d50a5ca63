package api

import (
	"fmt"
	"net/http"
)

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Summarizer Service is running\n")
	})
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /highlight", handler.HandleHighlight)
	mux.Handle("GET /metrics", handler.metrics.Handler())
}
