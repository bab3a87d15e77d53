// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Alexsandra-Z/system-analysis-2025/codec"
	"github.com/Alexsandra-Z/system-analysis-2025/consensus"
	"github.com/Alexsandra-Z/system-analysis-2025/service"
)

type mergeRequest struct {
	A any `json:"a" binding:"required"`
	B any `json:"b" binding:"required"`
}

type batchRequest struct {
	Items []mergeRequest `json:"items" binding:"required,dive"`
}

// resultBody is the JSON form of a consensus.Result.
type resultBody struct {
	Ranking        []any    `json:"ranking"`
	Clusters       [][]int  `json:"clusters"`
	Contradictions [][2]int `json:"contradictions"`
	Residual       bool     `json:"residual"`
	Objects        int      `json:"objects"`
}

type mergeResponse struct {
	RequestID string `json:"request_id"`
	resultBody
}

type batchItem struct {
	*resultBody
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

type batchResponse struct {
	RequestID string      `json:"request_id"`
	Results   []batchItem `json:"results"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
	Kind      string `json:"kind"`
}

func newResultBody(res *consensus.Result) resultBody {
	body := resultBody{
		Ranking:        codec.Render(res.Ranking),
		Clusters:       make([][]int, len(res.Clusters)),
		Contradictions: make([][2]int, len(res.Contradictions)),
		Residual:       res.Residual,
		Objects:        res.Objects,
	}
	for i, cl := range res.Clusters {
		ids := make([]int, len(cl))
		for j, id := range cl {
			ids[j] = int(id)
		}
		body.Clusters[i] = ids
	}
	for i, p := range res.Contradictions {
		body.Contradictions[i] = [2]int{int(p.A), int(p.B)}
	}

	return body
}

func (s *Server) handleMerge(c *gin.Context) {
	var req mergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, err)
		return
	}

	res, err := s.svc.MergeRaw(c.Request.Context(), req.A, req.B)
	if err != nil {
		s.serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, mergeResponse{
		RequestID:  c.GetString(ctxRequestID),
		resultBody: newResultBody(res),
	})
}

func (s *Server) handleBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.bindError(c, err)
		return
	}

	pairs := make([]service.Pair, len(req.Items))
	for i, it := range req.Items {
		pairs[i] = service.Pair{A: it.A, B: it.B}
	}
	outcomes, err := s.svc.MergeBatch(c.Request.Context(), pairs)
	if err != nil {
		s.serviceError(c, err)
		return
	}

	results := make([]batchItem, len(outcomes))
	for i, o := range outcomes {
		if o.Err != nil {
			kind := service.Classify(o.Err)
			results[i] = batchItem{Error: publicMessage(kind, o.Err), Kind: kind.String()}
			continue
		}
		body := newResultBody(o.Result)
		results[i] = batchItem{resultBody: &body}
	}

	c.JSON(http.StatusOK, batchResponse{RequestID: c.GetString(ctxRequestID), Results: results})
}

// bindError answers a body that could not be decoded.
func (s *Server) bindError(c *gin.Context, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		s.abort(c, http.StatusRequestEntityTooLarge, service.KindLimit.String(), "request body too large")
		return
	}
	s.abort(c, http.StatusBadRequest, service.KindInput.String(), "invalid request body: "+err.Error())
}

// serviceError maps a service error to a status by its Kind.
func (s *Server) serviceError(c *gin.Context, err error) {
	kind := service.Classify(err)
	status := http.StatusInternalServerError
	switch kind {
	case service.KindInput:
		status = http.StatusBadRequest
	case service.KindLimit:
		status = http.StatusRequestEntityTooLarge
	}
	s.abort(c, status, kind.String(), publicMessage(kind, err))
}

// publicMessage hides internal error details from clients.
func publicMessage(kind service.Kind, err error) string {
	if kind == service.KindInternal {
		return "internal error"
	}

	return err.Error()
}

func (s *Server) abort(c *gin.Context, status int, kind, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{
		RequestID: c.GetString(ctxRequestID),
		Error:     msg,
		Kind:      kind,
	})
}
