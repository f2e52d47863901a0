package handlers

import (
	"errors"
	"net/http"

	"consolidador/internal/usecase"
	"consolidador/internal/usecase/interfaces"
	"consolidador/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

func mapConsolidationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrder):
		return pkg.NewDomainError("INVALID_ORDER", "Invalid order", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBatch):
		return pkg.NewDomainError("INVALID_BATCH", "Invalid batch", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSupplier):
		return pkg.NewDomainError("INVALID_SUPPLIER", "Invalid supplier", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBatchNotFound):
		return pkg.NewDomainErrorSimple("BATCH_NOT_FOUND", "Batch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSupplierNotFound):
		return pkg.NewDomainErrorSimple("SUPPLIER_NOT_FOUND", "Supplier not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrBatchNotShipped):
		return pkg.NewDomainErrorSimple("BATCH_NOT_SHIPPED", "Batch has not been shipped yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrIntegrityCheckRunning):
		return pkg.NewDomainErrorSimple("INTEGRITY_CHECK_RUNNING", "An integrity check is already running", http.StatusConflict)
	case errors.Is(err, usecase.ErrImportMissingColumns):
		return pkg.NewDomainError("IMPORT_MISSING_COLUMNS", "CSV is missing required columns", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrImportEmpty):
		return pkg.NewDomainErrorSimple("IMPORT_EMPTY", "CSV has no data rows", http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrRemoteUnavailable):
		return pkg.NewDomainErrorSimple("REMOTE_UNAVAILABLE", "Remote store is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrQuotaExhausted):
		return pkg.NewDomainError("REMOTE_QUOTA_EXHAUSTED", "Remote store quota exhausted", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrLocalPersistence):
		return pkg.NewDomainError("LOCAL_PERSISTENCE_FAILED", "Could not save data locally", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapConsolidationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
