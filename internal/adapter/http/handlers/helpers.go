package handlers

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/CxTrack/PostBuild-CRM-sub002/internal/core/domain"
)

// bindJSONWithRaw decodes the request body into req and also returns the raw
// top-level fields, so payload builders can tell "absent" apart from "null".
func bindJSONWithRaw(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(body, req); err != nil {
		return nil, err
	}
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// isInvalidDraft reports whether err comes from domain draft validation, so
// handlers can answer 400 instead of 500.
func isInvalidDraft(err error) bool {
	return errors.Is(err, domain.ErrEmptyTitle) ||
		errors.Is(err, domain.ErrMissingDueDate) ||
		errors.Is(err, domain.ErrEndBeforeStart) ||
		errors.Is(err, domain.ErrInvalidEventType) ||
		errors.Is(err, domain.ErrInvalidTaskStatus) ||
		errors.Is(err, domain.ErrInvalidTaskPriority)
}
