// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"mediahub/internal/delivery/http/middleware"
	"mediahub/internal/domain/entity"
	domainerrors "mediahub/internal/domain/errors"
	"mediahub/internal/domain/service"
	"mediahub/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// emptyData is rendered as {} where a reply carries no payload.
var emptyData = struct{}{}

func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetIdentityID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessage("Invalid " + name)
	}

	return id, nil
}

// pageQuery reads ?page=&limit=, falling back to defaults on missing or malformed values.
func pageQuery(c echo.Context) entity.Page {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("limit"))

	return entity.NewPage(number, size)
}

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Invalid request body")
	}

	return c.Validate(req)
}

// formUpload opens a multipart file field. A missing field yields a nil upload and no error.
// The returned closer must be called once the upload has been consumed.
func formUpload(c echo.Context, field string) (*service.FileUpload, func(), error) {
	noop := func() {}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, domainerrors.ErrValidationFailed.WithMessage("Invalid " + field + " upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrapf(err, "open %s upload", field)
	}

	return &service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}
