package response

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"gestion-projets-core/internal/shared/apperror"
)

// Validator valide les corps de requête et nomme les champs par leur clé JSON
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct renvoie une erreur de validation avec le détail par champ, ou nil
func (v *Validator) Struct(value interface{}) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	champs := make(map[string]string, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		champs[fieldErr.Field()] = validationMessage(fieldErr)
	}
	return apperror.Validation("Erreur de validation", champs)
}

// Bind décode le corps JSON puis le valide
func (v *Validator) Bind(ctx *gin.Context, target interface{}) error {
	if err := ctx.ShouldBindJSON(target); err != nil {
		return apperror.Validation("Données invalides", map[string]string{"body": err.Error()})
	}
	return v.Struct(target)
}

func validationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "Ce champ est requis"
	case "min":
		return fmt.Sprintf("Doit contenir au moins %s caractères", err.Param())
	case "max":
		return fmt.Sprintf("Doit contenir au maximum %s caractères", err.Param())
	case "email":
		return "Format d'email invalide"
	case "oneof":
		return fmt.Sprintf("Valeur invalide. Valeurs autorisées: %s", err.Param())
	case "gte":
		return fmt.Sprintf("Doit être supérieur ou égal à %s", err.Param())
	case "gtefield":
		return fmt.Sprintf("Doit être supérieur ou égal au champ %s", err.Param())
	default:
		return "Valeur invalide"
	}
}

// QueryError erreur de décodage des paramètres de requête
func (v *Validator) QueryError(err error) error {
	return apperror.Validation("Paramètres invalides", map[string]string{"query": err.Error()})
}
