package handler

import (
	"net/http"
	"strconv"
	"time"

	"beautymarket/internal/delivery/api/middleware"
	"beautymarket/internal/delivery/api/response"
	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderSessionKey identifies an anonymous browsing session for analytics.
const HeaderSessionKey = "X-Session-Key"

// bindAndValidate binds the body into req and runs the struct validation.
// On failure the error response is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return false, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return true, nil
}

func clientInfo(c echo.Context) usecase.ClientInfo {
	return usecase.ClientInfo{
		IPAddress:  middleware.ClientIP(c),
		UserAgent:  c.Request().UserAgent(),
		SessionKey: c.Request().Header.Get(HeaderSessionKey),
		RequestID:  deliverycontext.GetRequestID(c),
	}
}

func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))

	return id, err == nil
}

func invalidID(c echo.Context, what string) error {
	return response.BadRequest(c, "INVALID_ID", "Invalid "+what+" ID")
}

func unauthorized(c echo.Context) error {
	return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
}

// queryPage returns the page query parameter; invalid values mean the first page.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func queryBool(c echo.Context, name string) *bool {
	v, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}

	return &v
}

// queryDateRange reads start_date and end_date; the default is the last 30 days.
func queryDateRange(c echo.Context, now time.Time) (entity.DateRange, bool) {
	to := entity.DateOf(now)
	from := to.AddDate(0, 0, -29)

	if raw := c.QueryParam("start_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return entity.DateRange{}, false
		}
		from = parsed
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return entity.DateRange{}, false
		}
		to = parsed
	}

	return entity.DateRange{From: from, To: to}, true
}

func message(c echo.Context, text string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": text})
}
