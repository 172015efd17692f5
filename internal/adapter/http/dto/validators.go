package dto

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var entityIDRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.:]{1,128}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entity_id", validateEntityID)
		_ = v.RegisterValidation("http_url", validateHTTPURL)
	}
}

// ValidEntityID reports whether s may be used as a shop entity id in Karla
// URLs.
func ValidEntityID(s string) bool {
	return entityIDRe.MatchString(s)
}

func validateEntityID(fl validator.FieldLevel) bool {
	return ValidEntityID(fl.Field().String())
}

// validateHTTPURL accepts only absolute http/https URLs. Empty values pass;
// use "required" to enforce presence.
func validateHTTPURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// TrimStrings trims whitespace from every exported string and *string field
// of a struct pointer, descending into nested structs, pointers and slices.
func TrimStrings(v interface{}) {
	trimValue(reflect.ValueOf(v))
}

func trimValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Ptr:
		if !rv.IsNil() {
			trimValue(rv.Elem())
		}
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			if f := rv.Field(i); f.CanSet() {
				trimValue(f)
			}
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			trimValue(rv.Index(i))
		}
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(strings.TrimSpace(rv.String()))
		}
	}
}
