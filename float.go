// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package numbits takes IEEE-754 floating-point values apart into integer
// (significand, exponent, sign) triples and puts them back together.
// It supports binary16, binary32, and binary64 values, where binary16
// is carried as a github.com/x448/float16 value.
//
// For every finite value, including zeros and subnormals,
//
//	Compose64(Decompose64(f).Significand, ...) == f
//
// bit for bit. Infinities and NaNs decompose to a class code with a zero
// significand, and only the class survives recomposition.
package numbits

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/x448/float16"

	"github.com/avdva/numbits/internal/mathutil"
)

// Class is an IEEE-754 value class code.
type Class uint8

const (
	// ClassFinite is a finite nonzero value, subnormals included.
	ClassFinite Class = 0
	// ClassZero is a positive or a negative zero.
	ClassZero Class = 1
	// ClassInf is a positive or a negative infinity.
	ClassInf Class = 2
	// ClassNaN is a quiet or a signaling nan.
	ClassNaN Class = 3
)

// Finite reports whether c is ClassFinite or ClassZero.
func (c Class) Finite() bool {
	return c <= ClassZero
}

// String returns a class name.
func (c Class) String() string {
	switch c {
	case ClassFinite:
		return "finite"
	case ClassZero:
		return "zero"
	case ClassInf:
		return "inf"
	case ClassNaN:
		return "nan"
	}
	return "class(" + strconv.Itoa(int(c)) + ")"
}

// layout describes the bit layout of a single IEEE-754 binary width.
// All supported widths go through the same decomposition routine,
// each consulting its own layout row.
type layout struct {
	width    uint32
	expBits  uint32
	mantBits uint32
	bias     int32
}

var (
	layout16 = layout{width: 16, expBits: 5, mantBits: 10, bias: 15}
	layout32 = layout{width: 32, expBits: 8, mantBits: 23, bias: 127}
	layout64 = layout{width: 64, expBits: 11, mantBits: 52, bias: 1023}
)

// Parts is a floating-point value decomposed into integers.
// For a finite value of a type with p significand bits:
//
//	normal:    2^(p-1) <= Significand <= 2^p - 1
//	subnormal: 0 < Significand < 2^(p-1)
//	zero:      Significand == 0
//
// p is 11 for binary16, 24 for binary32, and 53 for binary64.
// Sign is +1 or -1 and is taken from the sign bit, so negative zeros
// and negative nans keep Sign == -1.
type Parts struct {
	Class       Class  `json:"class"`
	Significand uint64 `json:"significand"`
	Exponent    int32  `json:"exponent"`
	Sign        int8   `json:"sign"`
}

// classify derives the class code from the three IEEE-754 bit predicates.
// Zero, infinity and nan patterns are mutually exclusive, so the
// arithmetic combination is unambiguous and never branches on the result.
func classify(b uint64, l layout) Class {
	expMask := uint64(1)<<l.expBits - 1
	mant := b & (uint64(1)<<l.mantBits - 1)
	exp := b >> l.mantBits & expMask
	isZero := mathutil.Bit(exp|mant == 0)
	isInf := mathutil.Bit(exp == expMask && mant == 0)
	isNaN := mathutil.Bit(exp == expMask && mant != 0)
	return Class(isZero | isInf<<1 | 3*isNaN)
}

// decompose splits raw bits into parts. The data flow is mask selection
// only, so decomposition takes the same path for every input.
func decompose(b uint64, l layout) Parts {
	expMask := uint64(1)<<l.expBits - 1
	mantMask := uint64(1)<<l.mantBits - 1
	mant := b & mantMask
	exp := b >> l.mantBits & expMask

	class := classify(b, l)
	normal := mathutil.Mask64(class == ClassFinite && exp != 0)
	subnormal := mathutil.Mask64(class == ClassFinite && exp == 0)

	// a normal value carries the implicit bit, a subnormal keeps its raw
	// significand with the minimal exponent of the width; infinities,
	// nans and zeros end up with a zero significand and exponent.
	sig := normal&(mant|(mantMask+1)) | subnormal&mant
	e := int32(normal)&(int32(exp)-l.bias-int32(l.mantBits)) |
		int32(subnormal)&(1-l.bias-int32(l.mantBits))

	return Parts{
		Class:       class,
		Significand: sig,
		Exponent:    e,
		Sign:        1 - 2*int8(b>>(l.width-1)),
	}
}

// Classify64 returns the class code of f: 0 for a finite nonzero value,
// 1 for a zero, 2 for an infinity, 3 for a nan.
func Classify64(f float64) Class {
	return classify(math.Float64bits(f), layout64)
}

// Classify32 is Classify64 for binary32 values.
func Classify32(f float32) Class {
	return classify(uint64(math.Float32bits(f)), layout32)
}

// ClassifyHalf is Classify64 for binary16 values.
func ClassifyHalf(h float16.Float16) Class {
	return classify(uint64(h.Bits()), layout16)
}

// Decompose64 splits f into parts, such that for any finite f
//
//	Compose64(p.Significand, p.Exponent, p.Sign) == f
//
// bit for bit. Infinities and nans decompose to Significand 0 and
// Exponent 0, with the sign bit kept in Sign.
func Decompose64(f float64) Parts {
	return decompose(math.Float64bits(f), layout64)
}

// Decompose32 is Decompose64 for binary32 values.
// The round trip counterpart is Compose32.
func Decompose32(f float32) Parts {
	return decompose(uint64(math.Float32bits(f)), layout32)
}

// DecomposeHalf is Decompose64 for binary16 values.
// The round trip counterpart is ComposeHalf.
func DecomposeHalf(h float16.Float16) Parts {
	return decompose(uint64(h.Bits()), layout16)
}

// Compose64 returns copysign(sig * 2^exp, sign).
// sig must be exactly representable in a float64, which always holds for
// parts produced by Decompose64; a wider significand is rounded on
// conversion and the round trip becomes inexact.
func Compose64(sig uint64, exp int32, sign int8) float64 {
	return math.Copysign(math.Ldexp(float64(sig), int(exp)), float64(sign))
}

// Compose32 returns copysign(sig * 2^exp, sign) as a float32.
// sig must be exactly representable in a float32, which always holds for
// parts produced by Decompose32.
func Compose32(sig uint64, exp int32, sign int8) float32 {
	return math32.Copysign(math32.Ldexp(float32(sig), int(exp)), float32(sign))
}

// ComposeHalf returns copysign(sig * 2^exp, sign) as a binary16 value.
// sig must be exactly representable in a binary16, which always holds for
// parts produced by DecomposeHalf.
func ComposeHalf(sig uint64, exp int32, sign int8) float16.Float16 {
	return float16.Fromfloat32(Compose32(sig, exp, sign))
}

// Float64 reassembles the parts into a float64.
// Finite classes reproduce the original value bit for bit; for ClassInf
// the result is an infinity of the recorded sign, for ClassNaN a nan.
func (p Parts) Float64() float64 {
	switch p.Class {
	case ClassInf:
		return math.Inf(int(p.Sign))
	case ClassNaN:
		return math.NaN()
	}
	return Compose64(p.Significand, p.Exponent, p.Sign)
}

// Float32 reassembles the parts into a float32, see Float64.
func (p Parts) Float32() float32 {
	switch p.Class {
	case ClassInf:
		return math32.Inf(int(p.Sign))
	case ClassNaN:
		return math32.NaN()
	}
	return Compose32(p.Significand, p.Exponent, p.Sign)
}

// Half reassembles the parts into a binary16 value, see Float64.
func (p Parts) Half() float16.Float16 {
	switch p.Class {
	case ClassInf:
		return float16.Inf(int(p.Sign))
	case ClassNaN:
		return float16.NaN()
	}
	return ComposeHalf(p.Significand, p.Exponent, p.Sign)
}

// Normalized returns the parts with the smallest possible significand
// representing the same value: trailing zero bits move into the exponent,
// so equal finite values always normalize to equal parts regardless of
// the width they were decomposed from. Non-finite classes are returned
// as is.
func (p Parts) Normalized() Parts {
	if p.Class != ClassFinite {
		return p
	}
	shift := bits.TrailingZeros64(p.Significand)
	p.Significand >>= uint(shift)
	p.Exponent += int32(shift)
	return p
}

// String returns the parts as "<sign><significand>p<exponent>",
// e.g. "+8388608p-23", or "0", "-0", "+inf", "-inf", "nan".
func (p Parts) String() string {
	switch p.Class {
	case ClassZero:
		if p.Sign < 0 {
			return "-0"
		}
		return "0"
	case ClassInf:
		if p.Sign < 0 {
			return "-inf"
		}
		return "+inf"
	case ClassNaN:
		return "nan"
	}
	var builder strings.Builder
	if p.Sign < 0 {
		builder.WriteByte('-')
	} else {
		builder.WriteByte('+')
	}
	builder.WriteString(strconv.FormatUint(p.Significand, 10))
	builder.WriteByte('p')
	if p.Exponent >= 0 {
		builder.WriteByte('+')
	}
	builder.WriteString(strconv.FormatInt(int64(p.Exponent), 10))
	return builder.String()
}

// GoString returns debug string representation.
func (p Parts) GoString() string {
	return p.String() + fmt.Sprintf(" {%v, %v, %v, %v}", p.Class, p.Significand, p.Exponent, p.Sign)
}
