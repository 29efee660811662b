package http

import (
	"fmt"

	"governance/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// bindEntityID reads the ":id" path parameter the way generated servers bind
// a uuid path parameter.
func bindEntityID(c echo.Context) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid format for parameter id: %w", err)
	}

	return kernel.UUIDFromBytes(raw[:])
}
