package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Client seeds are player-chosen but must stay printable and
	// journal-safe.
	clientSeedRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	// Node addresses are base58/hex style identifiers.
	chainAddressRe = regexp.MustCompile(`^[a-zA-Z0-9]{8,128}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("client_seed", validateClientSeed)
		_ = v.RegisterValidation("chain_address", validateChainAddress)
	}
}

func validateClientSeed(fl validator.FieldLevel) bool {
	return clientSeedRe.MatchString(fl.Field().String())
}

func validateChainAddress(fl validator.FieldLevel) bool {
	return chainAddressRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
