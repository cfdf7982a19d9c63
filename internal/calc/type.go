//go:generate go run github.com/dmarkham/enumer -type=ElemType -trimprefix=Elem -transform=lower
package calc

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ElemType selects the concrete integer type interval endpoints are parsed
// and computed as.
type ElemType int

const (
	ElemInt ElemType = iota
	ElemInt8
	ElemInt16
	ElemInt32
	ElemInt64
	ElemUint
	ElemUint8
	ElemUint16
	ElemUint32
	ElemUint64
	ElemUintptr
)

// TypeFlag is a pflag.Value selecting the element type of a calculation.
type TypeFlag struct {
	Elem ElemType
}

var _ pflag.Value = (*TypeFlag)(nil)

func (f *TypeFlag) String() string {
	return f.Elem.String()
}

func (f *TypeFlag) Set(v string) error {
	et, err := ElemTypeString(v)
	if err != nil {
		return fmt.Errorf("unknown element type %q, allowed types are: %s", v, strings.Join(ElemTypeStrings(), ", "))
	}
	f.Elem = et
	return nil
}

func (f *TypeFlag) Type() string {
	return "type"
}
