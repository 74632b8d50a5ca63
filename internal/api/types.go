package api

import (
	"github.com/wgomg/sumario/internal/digest"
	"github.com/wgomg/sumario/internal/processor"
)

type SummarizeRequest struct {
	Text      string `json:"text"`
	HTML      string `json:"html"`
	Sentences int    `json:"sentences"`
	Mode      string `json:"mode"`
	Model     string `json:"model"`
}

type SummarizeResponse struct {
	digest.Result
	PlainText string `json:"plain_text"`
}

type HighlightRequest struct {
	HTML  string                 `json:"html"`
	Items []processor.ActionItem `json:"items"`
}

type HighlightResponse struct {
	HTML    string                 `json:"html"`
	Changed bool                   `json:"changed"`
	Items   []processor.ActionItem `json:"items"`
}
