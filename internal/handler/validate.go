package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// rfc3339 is the datetime layout accepted for preferredDate. Fractional
// seconds are accepted on parse.
const rfc3339 = "2006-01-02T15:04:05Z07:00"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// エラーのフィールド名を JSON 名で返す
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is one entry of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type validationResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

// requestError carries the field errors of a rejected body.
type requestError struct {
	fields []FieldError
}

func (e *requestError) Error() string {
	return fmt.Sprintf("invalid request: %d field error(s)", len(e.fields))
}

// decodeAndValidate decodes the JSON body into dst and runs its validate
// tags. Any failure is returned as *requestError.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) error {
	data, err := readBody(w, r)
	if err != nil {
		return err
	}
	return unmarshalAndValidate(data, dst)
}

// readBody reads at most maxBodyBytes of the request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, &requestError{fields: []FieldError{decodeFieldError(err)}}
	}
	return data, nil
}

func unmarshalAndValidate(data []byte, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return &requestError{fields: []FieldError{decodeFieldError(err)}}
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &requestError{fields: toFieldErrors(verrs)}
		}
		return err
	}
	return nil
}

// explicitNulls returns the top-level keys of a JSON object whose value is
// null. A pointer field cannot tell null from absent after decoding.
func explicitNulls(data []byte) map[string]bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	nulls := map[string]bool{}
	for k, v := range fields {
		if string(bytes.TrimSpace(v)) == "null" {
			nulls[k] = true
		}
	}
	return nulls
}

func decodeFieldError(err error) FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return FieldError{Field: typeErr.Field, Rule: "type", Message: fmt.Sprintf("must be a %s", typeErr.Type.Kind())}
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return FieldError{Field: "body", Rule: "max", Message: "request body too large"}
	}
	return FieldError{Field: "body", Rule: "json", Message: "request body must be valid JSON"}
}

func toFieldErrors(verrs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), "' '", "', '")
	case "datetime":
		return "must be an ISO 8601 date-time"
	case "timezone":
		return "must be an IANA time zone"
	default:
		return "is invalid"
	}
}

// writeValidation replies 400 {message, errors} for a *requestError; other
// errors are treated as internal.
func writeValidation(w http.ResponseWriter, r *http.Request, err error) {
	var reqErr *requestError
	if !errors.As(err, &reqErr) {
		writeInternal(w, r, "Invalid input data", err)
		return
	}
	writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Invalid input data", Errors: reqErr.fields})
}
