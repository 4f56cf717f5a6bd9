package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digitalmuseum/archive-api/internal/types"
)

var (
	InternalServerError = echo.NewHTTPError(
		http.StatusInternalServerError,
		types.StringError("something went wrong"),
	)
	NotFoundError = echo.NewHTTPError(http.StatusNotFound, types.StringError("not found"))
	BadRequestError = echo.NewHTTPError(
		http.StatusBadRequest,
		types.StringError("failed to parse request data"),
	)
)
