package seqs

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ccoveille/go-safecast/v2"
	"golang.org/x/exp/constraints"
)

// ErrInvalidAmount is matched by every error reported for an amount that is
// neither Unbounded nor a non-negative integer.
var ErrInvalidAmount = errors.New("invalid amount")

// InvalidAmountError carries the rejected amount.
type InvalidAmountError struct {
	Value any
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("the amount <%v> must be unbounded or an integer greater than -1", e.Value)
}

func (e *InvalidAmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// Amount bounds how many elements Head, Skipped, Tail and Truncated act on.
// The zero value is Unbounded.
type Amount struct {
	n       int
	bounded bool
}

// Unbounded means "no limit". Head and Tail yield all of the source; Skipped and
// Truncated leave it untouched and yield all of it as well.
var Unbounded = Amount{}

// Count returns an amount of exactly n elements. Negative counts are rejected when the amount is used.
func Count(n int) Amount {
	return Amount{n: n, bounded: true}
}

// AmountOf converts any integer to an Amount, rejecting negative values and
// values that do not fit in an int.
func AmountOf[N constraints.Integer](n N) (Amount, error) {
	if n < 0 {
		return Amount{}, &InvalidAmountError{Value: n}
	}
	if uint64(n) > math.MaxInt {
		return Amount{}, &InvalidAmountError{Value: n}
	}
	return Count(int(n)), nil
}

// ParseAmount converts a dynamically typed value to an Amount.
// nil is Unbounded, any Go integer type that fits in an int and is not
// negative is a count; everything else, floats included, is invalid.
func ParseAmount(v any) (Amount, error) {
	var (
		n   int
		err error
	)
	switch x := v.(type) {
	case nil:
		return Unbounded, nil
	case Amount:
		return x, x.Validate()
	case int:
		n = x
	case int8:
		n, err = safecast.Convert[int](x)
	case int16:
		n, err = safecast.Convert[int](x)
	case int32:
		n, err = safecast.Convert[int](x)
	case int64:
		n, err = safecast.Convert[int](x)
	case uint:
		n, err = safecast.Convert[int](x)
	case uint8:
		n, err = safecast.Convert[int](x)
	case uint16:
		n, err = safecast.Convert[int](x)
	case uint32:
		n, err = safecast.Convert[int](x)
	case uint64:
		n, err = safecast.Convert[int](x)
	default:
		return Amount{}, &InvalidAmountError{Value: v}
	}
	if err != nil || n < 0 {
		return Amount{}, &InvalidAmountError{Value: v}
	}
	return Count(n), nil
}

// Validate reports an error matching ErrInvalidAmount for a negative count.
func (a Amount) Validate() error {
	if a.bounded && a.n < 0 {
		return &InvalidAmountError{Value: a.n}
	}
	return nil
}

func (a Amount) IsUnbounded() bool {
	return !a.bounded
}

// N returns the count and true, or 0 and false for Unbounded.
func (a Amount) N() (int, bool) {
	return a.n, a.bounded
}

func (a Amount) String() string {
	if !a.bounded {
		return "unbounded"
	}
	return strconv.Itoa(a.n)
}
