package server

import (
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zephyrtronium/equations"
	"github.com/zephyrtronium/equations/internal/service"
)

type handlers struct {
	svc *service.Service
}

type storeRequest struct {
	Equation string `json:"equation"`
}

type evaluateRequest struct {
	Variables equations.Bindings `json:"variables"`
}

// evaluation is the wire form of service.EvaluationResponse. Result is null
// when the value is NaN or infinite, with ResultText holding its text.
type evaluation struct {
	EquationID int64              `json:"equationId"`
	Equation   string             `json:"equation"`
	Variables  equations.Bindings `json:"variables"`
	Result     *float64           `json:"result"`
	ResultText string             `json:"resultText,omitempty"`
}

func (h handlers) store(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abort(c, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	r, err := h.svc.Store(c.Request.Context(), req.Equation)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h handlers) list(c *gin.Context) {
	r, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h handlers) evaluate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abort(c, http.StatusBadRequest, codeBadRequest, "invalid equation id "+strconv.Quote(c.Param("id")))
		return
	}
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abort(c, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}
	ctx := c.Request.Context()
	r, err := h.svc.Evaluate(ctx, id, req.Variables)
	if err != nil {
		if errors.Is(err, equations.ErrVariableNotFound) {
			if m, merr := h.svc.Missing(ctx, id, req.Variables); merr == nil && len(m) > 0 {
				abort(c, http.StatusBadRequest, codeVariableNotFound, "no values for variables: "+strings.Join(m, ", "))
				return
			}
		}
		fail(c, err)
		return
	}
	e := evaluation{
		EquationID: r.EquationID,
		Equation:   r.Equation,
		Variables:  r.Variables,
	}
	if math.IsNaN(r.Result) || math.IsInf(r.Result, 0) {
		e.ResultText = strconv.FormatFloat(r.Result, 'g', -1, 64)
	} else {
		e.Result = &r.Result
	}
	c.JSON(http.StatusOK, e)
}
