package cmd

import (
	"github.com/spf13/pflag"

	"github.com/gogpu/qmandel/exact"
)

// complexValue adapts an exact.Complex to a command-line flag accepting
// "re,im" or "re", each part an integer, fraction or decimal.
type complexValue struct {
	z *exact.Complex
}

var _ pflag.Value = complexValue{}

func (v complexValue) String() string {
	if v.z == nil {
		return ""
	}
	return v.z.String()
}

func (v complexValue) Set(s string) error {
	z, err := exact.ParseComplex(s)
	if err != nil {
		return err
	}
	*v.z = z
	return nil
}

func (v complexValue) Type() string {
	return "complex"
}
