package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"ehr-gateway-service/internal/app/contracts"
	"ehr-gateway-service/internal/app/models"
	"ehr-gateway-service/internal/pkg/constvars"
	"ehr-gateway-service/internal/pkg/exceptions"
	"ehr-gateway-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resourceMessages struct {
	List   string
	Get    string
	Create string
	Update string
}

// resourceController serves the read, create and update routes every
// proxied resource shares. Upstream payloads are returned untouched.
type resourceController struct {
	Log            *zap.Logger
	EntityUsecase  contracts.EntityUsecase
	RequestTimeout time.Duration
	Resource       models.Resource
	Messages       resourceMessages
}

func (ctrl *resourceController) FindByFilters(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("resourceController.FindByFilters called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
	)

	filters, err := utils.ParseSearchFilters(r.URL.RawQuery)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.FetchByFilters(ctx, ctrl.Resource, filters)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "FindByFilters", err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, ctrl.Messages.List, utils.BuildBundlePagination(payload), payload)
}

func (ctrl *resourceController) FindByPage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("resourceController.FindByPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
	)

	page, err := utils.ParsePageNumber(chi.URLParam(r, constvars.URLParamPageNo))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.FetchByPage(ctx, ctrl.Resource, page)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "FindByPage", err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, ctrl.Messages.List, utils.BuildBundlePagination(payload), payload)
}

func (ctrl *resourceController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("resourceController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
	)

	id, err := utils.ParseResourceID(chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.FetchByID(ctx, ctrl.Resource, id)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, ctrl.Messages.Get, payload)
}

func (ctrl *resourceController) Create(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("resourceController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
	)

	body, err := readRawJSON(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.Create(ctx, ctrl.Resource, body)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "Create", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, ctrl.Messages.Create, payload)
}

func (ctrl *resourceController) Update(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("resourceController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
	)

	id, err := utils.ParseResourceID(chi.URLParam(r, constvars.URLParamID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	body, err := readRawJSON(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	payload, err := ctrl.EntityUsecase.Update(ctx, ctrl.Resource, id, body)
	if err != nil {
		ctrl.fail(ctx, w, requestID, "Update", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, ctrl.Messages.Update, payload)
}

func (ctrl *resourceController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return withRequestTimeout(r, ctrl.RequestTimeout)
}

func withRequestTimeout(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// fail writes err, reporting a deadline hit by the request context as such
// instead of whatever the upstream call surfaced.
func (ctrl *resourceController) fail(ctx context.Context, w http.ResponseWriter, requestID, action string, err error) {
	ctrl.Log.Error("resourceController."+action+" failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, ctrl.Resource.String()),
		zap.Error(err),
	)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}

func readRawJSON(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if !json.Valid(body) {
		return nil, exceptions.ErrCannotParseJSON(errors.New("request body is not valid JSON"))
	}
	return body, nil
}

// decodeForm decodes and validates a JSON form body into dst.
func decodeForm(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := utils.ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
