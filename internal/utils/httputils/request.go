package httputils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/wgomg/sumario/internal/utils"
)

// MaxBodyBytes bounds request bodies; email bodies larger than this are rejected.
const MaxBodyBytes = 4 << 20

func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

func LogRequestBody(r *http.Request, logger *utils.Logger, reqID string) ([]byte, error) {
	bodyBytes, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return nil, err
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	if logger.RawBodyLog {
		logger.Debug(&reqID, "Raw request body: %s", string(bodyBytes))
	}

	return bodyBytes, nil
}
