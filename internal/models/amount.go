package models

import (
	"errors"
	"math"
	"strconv"
)

const NanoPerToken = 1e9

// Amount is the atomic ledger unit. Each unit equals 1e-9 of a token.
type Amount int64

func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

func NewAmount(tokens float64) (Amount, error) {
	switch {
	case math.IsNaN(tokens),
		math.IsInf(tokens, 1),
		math.IsInf(tokens, -1):
		return 0, errors.New("invalid token amount")
	}
	return round(tokens * float64(NanoPerToken)), nil
}

func (a Amount) ToTokens() float64 {
	return float64(a) / float64(NanoPerToken)
}

func (a Amount) ToNano() int64 {
	return int64(a)
}

func (a Amount) String() string {
	return strconv.FormatFloat(a.ToTokens(), 'f', -1, 64) + " FIT"
}

// MulBps multiplies by a basis-point fraction, truncating toward zero.
func (a Amount) MulBps(bps int64) Amount {
	return Amount(int64(a) * bps / 10000)
}
