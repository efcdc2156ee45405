package translation

// Index handler names as they appear in stat translation tables
const (
	HandlerPerMinuteToPerSecond     = "per_minute_to_per_second"
	HandlerDivideByTwo0dp           = "divide_by_two_0dp"
	HandlerDivideByThree            = "divide_by_three"
	HandlerDivideByFour             = "divide_by_four"
	HandlerDivideByFive             = "divide_by_five"
	HandlerDivideBySix              = "divide_by_six"
	HandlerDivideByTen0dp           = "divide_by_ten_0dp"
	HandlerDivideByTen1dp           = "divide_by_ten_1dp"
	HandlerDivideByTwelve           = "divide_by_twelve"
	HandlerDivideByFifteen0dp       = "divide_by_fifteen_0dp"
	HandlerDivideByFifty            = "divide_by_fifty"
	HandlerDivideByOneHundred       = "divide_by_one_hundred"
	HandlerDivideByOneHundred2dp    = "divide_by_one_hundred_2dp"
	HandlerDivideByOneThousand      = "divide_by_one_thousand"
	HandlerMillisecondsToSeconds    = "milliseconds_to_seconds"
	HandlerMillisecondsToSeconds0dp = "milliseconds_to_seconds_0dp"
	HandlerMillisecondsToSeconds1dp = "milliseconds_to_seconds_1dp"
	HandlerMillisecondsToSeconds2dp = "milliseconds_to_seconds_2dp"
	HandlerDecisecondsToSeconds     = "deciseconds_to_seconds"
	HandlerSixtyPercentOfValue      = "60%_of_value"
	HandlerThirtyPercentOfValue     = "30%_of_value"
	HandlerDouble                   = "double"
	HandlerTimesTwenty              = "times_twenty"
	HandlerTimesOnePointFive        = "times_one_point_five"
	HandlerMultiplyByFour           = "multiply_by_four"
	HandlerNegate                   = "negate"
	HandlerNegateAndDouble          = "negate_and_double"
)

// Template markers
const (
	// ValueSlot is where a rendered value goes inside a format wrapper
	ValueSlot = "#"

	rangeFormat = "(%s-%s)"
)
