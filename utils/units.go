package utils

func SprintfNoEscape(format string, v ...any) string {
	return string(AppendfNoEscape(nil, format, v...))
}

// SiUnits formats number with a K/M/G/T suffix, used for hash rates
func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return SprintfNoEscape("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return SprintfNoEscape("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return SprintfNoEscape("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return SprintfNoEscape("%.*f K", decimals, number/1000)
	}

	return SprintfNoEscape("%.*f ", decimals, number)
}
