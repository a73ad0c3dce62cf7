package handler

import (
	"net/http"

	"github.com/osse101/StockDesk_Go/internal/securities"
)

// CreateSecurityRequest adds a security to the catalog
type CreateSecurityRequest struct {
	Code  string `json:"code" validate:"required,max=50,printable"`
	Name  string `json:"name" validate:"required,max=50,printable"`
	Price int64  `json:"price" validate:"gte=0"`
}

// HandleCreateSecurity adds a security
// @Summary Create security
// @Tags securities
// @Accept json
// @Produce json
// @Param request body CreateSecurityRequest true "Security"
// @Success 200 {object} domain.Security
// @Failure 400 {object} ErrorResponse
// @Router /securities [post]
func HandleCreateSecurity(svc securities.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSecurityRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create security"); err != nil {
			return
		}

		sec, err := svc.Create(r.Context(), req.Code, req.Name, req.Price)
		if err != nil {
			respondServiceError(w, r, "Create security", err)
			return
		}

		respondJSON(w, http.StatusOK, sec)
	}
}

// HandleListSecurities returns the catalog ordered by id
// @Summary List securities
// @Tags securities
// @Produce json
// @Success 200 {array} domain.Security
// @Router /securities [get]
func HandleListSecurities(svc securities.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List securities", err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

// HandleUpdateSecurityPrice sets a new price
// @Summary Update security price
// @Tags securities
// @Produce json
// @Param security_id path int true "Security ID"
// @Param price query int true "New price"
// @Success 200 {object} domain.Security
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /securities/{security_id} [put]
func HandleUpdateSecurityPrice(svc securities.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDPathParam(r, w, ParamSecurityID)
		if !ok {
			return
		}
		price, ok := GetInt64QueryParam(r, w, ParamPrice)
		if !ok {
			return
		}

		sec, err := svc.UpdatePrice(r.Context(), id, price)
		if err != nil {
			respondServiceError(w, r, "Update security price", err)
			return
		}

		respondJSON(w, http.StatusOK, sec)
	}
}

// HandleDeleteSecurity removes a security and returns the deleted row
// @Summary Delete security
// @Tags securities
// @Produce json
// @Param security_id path int true "Security ID"
// @Success 200 {object} domain.Security
// @Failure 404 {object} ErrorResponse
// @Router /securities/{security_id} [delete]
func HandleDeleteSecurity(svc securities.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIDPathParam(r, w, ParamSecurityID)
		if !ok {
			return
		}

		sec, err := svc.Delete(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Delete security", err)
			return
		}

		respondJSON(w, http.StatusOK, sec)
	}
}
