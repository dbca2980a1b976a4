package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

func JSONError(ctx iris.Context, status int, code, message string) {
	ctx.StopWithJSON(status, iris.Map{"error": code, "message": message})
}

// HandleValidationErrors maps a failed ReadJSON to a 400 response. Validator
// failures list the offending fields; anything else is a malformed body.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make([]iris.Map, 0, len(errs))
		for _, e := range errs {
			fields = append(fields, iris.Map{
				"field": e.Field(),
				"tag":   e.Tag(),
			})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "validation_error",
			"message": "Fields are missing or in the wrong format",
			"fields":  fields,
		})
		return
	}

	ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
		"error":   "invalid_payload",
		"message": "invalid request body",
	})
}
