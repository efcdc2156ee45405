package translation

import (
	"math"
	"strconv"
)

// handlerFunc converts a raw stat value into its displayed magnitude
type handlerFunc func(float64) float64

var indexHandlers = map[string]handlerFunc{
	HandlerPerMinuteToPerSecond:     divideBy(60),
	HandlerDivideByTwo0dp:           roundedTo(0, divideBy(2)),
	HandlerDivideByThree:            divideBy(3),
	HandlerDivideByFour:             divideBy(4),
	HandlerDivideByFive:             divideBy(5),
	HandlerDivideBySix:              divideBy(6),
	HandlerDivideByTen0dp:           roundedTo(0, divideBy(10)),
	HandlerDivideByTen1dp:           roundedTo(1, divideBy(10)),
	HandlerDivideByTwelve:           divideBy(12),
	HandlerDivideByFifteen0dp:       roundedTo(0, divideBy(15)),
	HandlerDivideByFifty:            divideBy(50),
	HandlerDivideByOneHundred:       divideBy(100),
	HandlerDivideByOneHundred2dp:    roundedTo(2, divideBy(100)),
	HandlerDivideByOneThousand:      divideBy(1000),
	HandlerMillisecondsToSeconds:    divideBy(1000),
	HandlerMillisecondsToSeconds0dp: roundedTo(0, divideBy(1000)),
	HandlerMillisecondsToSeconds1dp: roundedTo(1, divideBy(1000)),
	HandlerMillisecondsToSeconds2dp: roundedTo(2, divideBy(1000)),
	HandlerDecisecondsToSeconds:     divideBy(10),
	HandlerSixtyPercentOfValue:      multiplyBy(0.6),
	HandlerThirtyPercentOfValue:     multiplyBy(0.3),
	HandlerDouble:                   multiplyBy(2),
	HandlerTimesTwenty:              multiplyBy(20),
	HandlerTimesOnePointFive:        multiplyBy(1.5),
	HandlerMultiplyByFour:           multiplyBy(4),
	HandlerNegate:                   multiplyBy(1),
	HandlerNegateAndDouble:          multiplyBy(2),
}

// Values are rendered as magnitudes, so negating handlers flip the sign marker instead.
var signFlipping = map[string]bool{
	HandlerNegate:          true,
	HandlerNegateAndDouble: true,
}

func divideBy(d float64) handlerFunc {
	return func(v float64) float64 { return v / d }
}

func multiplyBy(m float64) handlerFunc {
	return func(v float64) float64 { return v * m }
}

func roundedTo(places int, next handlerFunc) handlerFunc {
	scale := math.Pow(10, float64(places))
	return func(v float64) float64 {
		return math.Round(next(v)*scale) / scale
	}
}

// ApplyHandler transforms value with the named index handler and formats it
// in shortest form. Unknown handler names leave the value unchanged.
func ApplyHandler(name string, value float64) string {
	if h, ok := indexHandlers[name]; ok {
		value = h(value)
	}
	return FormatNumber(value)
}

// FlipsSign reports whether the named handler negates the value.
func FlipsSign(name string) bool {
	return signFlipping[name]
}

// FormatNumber prints v without trailing zeros ("3", "48.1", "0.25").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
