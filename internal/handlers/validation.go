package handlers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidator builds a validator that reports fields by their json name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldLabels maps json field names to the label used in error messages.
var fieldLabels = map[string]string{
	"nome":       "nome",
	"cpf":        "CPF",
	"email":      "e-mail",
	"senha":      "senha",
	"preco":      "preço",
	"descricao":  "descrição",
	"usuario_id": "usuário",
	"produto_id": "produto",
}

// validationMessages turns validator failures into the field→messages map
// the API exposes.
func validationMessages(err error) map[string][]string {
	out := make(map[string][]string)
	for _, e := range err.(validator.ValidationErrors) {
		field := e.Field()
		out[field] = append(out[field], messageFor(field, e.Tag(), e.Param()))
	}
	return out
}

func messageFor(field, tag, param string) string {
	label := fieldLabels[field]
	if label == "" {
		label = field
	}

	switch tag {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", label)
	case "max":
		return fmt.Sprintf("O %s não pode ter mais de %s caracteres.", label, param)
	case "min":
		if param == "1" {
			// min=1 on optional fields means present-but-empty.
			return fmt.Sprintf("O campo %s é obrigatório.", label)
		}
		return fmt.Sprintf("A %s deve ter pelo menos %s caracteres.", label, param)
	case "email":
		return "O e-mail deve ter um formato válido."
	case "gte":
		return fmt.Sprintf("O %s deve ser maior ou igual a %s.", label, param)
	default:
		return fmt.Sprintf("O campo %s é inválido.", label)
	}
}

// parseID reads the numeric :id route parameter. Non-numeric or non-positive
// values behave like a missing record.
func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
