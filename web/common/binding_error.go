package common

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatBindingErrors turns a gin binding failure into one message per
// offending field, in the same shape the pipelines accumulate.
func FormatBindingErrors(err error) []string {
	if err == nil {
		return nil
	}

	if err == io.EOF {
		return []string{"Corpo da requisição vazio"}
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return []string{fmt.Sprintf("JSON inválido na posição %d", syntaxErr.Offset)}
	}

	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []string{fmt.Sprintf("Campo '%s' deve ser do tipo %s", typeErr.Field, typeErr.Type.String())}
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make([]string, 0, len(ve))
		for _, fe := range ve {
			out = append(out, formatFieldError(fe))
		}
		return out
	}

	return []string{err.Error()}
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Campo '%s' é obrigatório", fe.Field())
	case "email":
		return fmt.Sprintf("Campo '%s' deve ser um email válido", fe.Field())
	case "min":
		return fmt.Sprintf("Campo '%s' deve ter no mínimo %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Campo '%s' deve ter no máximo %s", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("Campo '%s' deve ser numérico", fe.Field())
	case "len":
		return fmt.Sprintf("Campo '%s' deve ter tamanho %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("Campo '%s' falhou na validação '%s'", fe.Field(), fe.Tag())
}
