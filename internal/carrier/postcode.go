package carrier

import "strconv"

// metroRanges are inclusive postcode ranges served as metropolitan areas.
var metroRanges = [][2]int{
	{1000, 1935}, {2000, 2079}, {2085, 2107}, {2109, 2156}, {2158, 2172},
	{2174, 2229}, {2232, 2249}, {2557, 2559}, {2564, 2567}, {2740, 2744},
	{2747, 2751}, {2759, 2764}, {2766, 2774}, {2776, 2777}, {2890, 2897},
	{3000, 3062}, {3064, 3098}, {3101, 3138}, {3140, 3210}, {3800, 3801},
	{4000, 4018}, {4029, 4068}, {4072, 4123}, {4127, 4129}, {4131, 4132},
	{4151, 4164}, {4169, 4182}, {4205, 4206}, {5000, 5113}, {5115, 5117},
	{5125, 5130}, {5158, 5169}, {5800, 5999}, {8000, 8999}, {9000, 9275},
	{9999, 9999},
}

// IsMetro reports whether postcode lies in a metropolitan range.
// Postcodes that are not numeric count as metro.
func IsMetro(postcode string) bool {
	n, err := strconv.Atoi(postcode)
	if err != nil {
		return true
	}
	for _, r := range metroRanges {
		if n >= r[0] && n <= r[1] {
			return true
		}
	}
	return false
}
