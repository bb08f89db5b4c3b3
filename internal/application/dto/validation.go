package dto

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/expedicao-api/internal/domain"
)

// MaxPasswordBytes límite de bcrypt; por encima GenerateFromPassword falla.
const MaxPasswordBytes = 72

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+\.[a-zA-Z0-9_]+$`)

// validate instancia compartida: cachea la metadata de cada struct.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores nombran el campo como viaja en el JSON.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se compara como número en min/max/gt.
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		if d, ok := f.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	custom := map[string]validator.Func{
		// nombre.apellido
		"username": func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		},
		"bcryptmax": func(fl validator.FieldLevel) bool {
			return len(fl.Field().String()) <= MaxPasswordBytes
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("dto: registrar validación " + tag + ": " + err.Error())
		}
	}
	return v
}

// fieldMessages mensajes fijos por campo.regla.
var fieldMessages = map[string]string{
	"cnpj_cpf.number":    "CNPJ/CPF deve conter apenas números",
	"phone.number":       "Telefone deve conter apenas números",
	"username.username":  "O nome de usuário só pode conter letras e pontos. Ex: Victor.Leal",
	"role.oneof":         "Cargo inválido",
	"password.min":       "A senha deve ter pelo menos 6 dígitos",
	"password.bcryptmax": "A senha deve ter no máximo 72 bytes",
	"sifOrSisbi.oneof":   "sifOrSisbi deve ser SIF, SISBI ou NA",
}

// check corre las etiquetas `validate` de r y suma las reglas que no caben en
// una etiqueta (extra, sólo las no vacías). Todo sale como un único BadRequest.
func check(r any, extra ...string) error {
	var msgs []string
	if err := validate.Struct(r); err != nil {
		var fields validator.ValidationErrors
		if !errors.As(err, &fields) {
			return domain.Wrap(domain.ErrBadRequest, "Dados inválidos.", err)
		}
		for _, fe := range fields {
			msgs = append(msgs, message(fe))
		}
	}
	for _, m := range extra {
		if m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return domain.BadRequest(strings.Join(msgs, "; "))
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	field := fieldPath(fe)
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return field + " é obrigatório"
	case "email":
		return field + " deve ser um e-mail válido"
	case "number":
		return field + " deve conter apenas números"
	case "oneof":
		return field + " deve ser um de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return field + " deve ser maior que " + fe.Param()
	case "min":
		switch {
		case text:
			return field + " deve ter pelo menos " + fe.Param() + " caracteres"
		case fe.Param() == "0":
			return field + " não pode ser negativo"
		case fe.Param() == "1":
			return field + " deve ser maior que zero"
		}
		return field + " deve ser maior ou igual a " + fe.Param()
	case "max":
		if text {
			return field + " deve ter no máximo " + fe.Param() + " caracteres"
		}
		return field + " deve ser menor ou igual a " + fe.Param()
	}
	return field + " inválido"
}

// fieldPath "CreateDailyReportRequest.products[0].code" → "products[0].code".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}
