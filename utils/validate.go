package utils

import (
	"encoding/json"
	"net/http"

	validatorv10 "github.com/go-playground/validator/v10"
)

var validate = validatorv10.New()

// BindAndValidate decodes the JSON body into out and runs struct
// validation. On failure it writes a 400 response and returns an error so
// the handler can short-circuit.
func BindAndValidate(w http.ResponseWriter, r *http.Request, out interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		RespondWithJSON(w, http.StatusBadRequest, M{
			"error": "invalid_request_body",
			"msg":   err.Error(),
		})
		return err
	}

	if err := validate.Struct(out); err != nil {
		RespondWithJSON(w, http.StatusBadRequest, M{
			"error":  "validation_failed",
			"fields": validationErrorsToMap(err),
		})
		return err
	}
	return nil
}

func validationErrorsToMap(err error) map[string]string {
	out := map[string]string{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.StructNamespace()] = fe.Error()
		}
	} else {
		out["error"] = err.Error()
	}
	return out
}
