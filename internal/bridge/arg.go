package bridge

import (
	"math"
	"time"
)

// Kind is the script type of an argument.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindString
	KindNumber
	KindOther
)

// Arg is one script call argument.
type Arg struct {
	Kind Kind
	Str  string
	Num  float64
}

func String(s string) Arg  { return Arg{Kind: KindString, Str: s} }
func Number(n float64) Arg { return Arg{Kind: KindNumber, Num: n} }
func Null() Arg            { return Arg{Kind: KindNull} }
func Undefined() Arg       { return Arg{Kind: KindUndefined} }

// str returns args[i] when it is a string.
func str(args []Arg, i int) (string, bool) {
	if i >= len(args) || args[i].Kind != KindString {
		return "", false
	}
	return args[i].Str, true
}

// count returns args[i] as a positive whole number, or 0 when it is
// missing, not a number, not finite or out of range.
func count(args []Arg, i int) int {
	if i >= len(args) || args[i].Kind != KindNumber {
		return 0
	}
	n := math.Trunc(args[i].Num)
	if math.IsNaN(n) || n <= 0 || n > math.MaxInt32 {
		return 0
	}
	return int(n)
}

// millis returns args[i] as a duration in milliseconds, or 0 when it is
// not a usable number.
func millis(args []Arg, i int) time.Duration {
	return time.Duration(count(args, i)) * time.Millisecond
}
