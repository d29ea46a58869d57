package services

import (
	"fmt"
	"math/rand"
)

// CodeGenerator — источник 6-значных кодов подтверждения.
// Выделен в интерфейс, чтобы в тестах подставлять детерминированные коды.
type CodeGenerator interface {
	Code() string
}

type randCodeGenerator struct{}

func NewCodeGenerator() CodeGenerator { return randCodeGenerator{} }

// Code — равномерно из диапазона 100000..999999.
func (randCodeGenerator) Code() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
