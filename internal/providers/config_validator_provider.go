package providers

import (
	"path/filepath"

	"github.com/gookit/validate"

	"ftd/internal/structures"
)

func init() {
	validate.AddValidator("unixPath", func(val string) bool {
		return val != "" && filepath.IsAbs(val)
	})
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
