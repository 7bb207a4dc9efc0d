package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"fitledger/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("config validation failed: %s", v.Errors.One())
	}

	eng := &cv.conf.Engine
	if eng.PremiumMonthlyPrice >= eng.PremiumYearlyPrice {
		return fmt.Errorf("config validation failed: monthly premium price must be below yearly")
	}
	return nil
}
