package psychrometrics

// 温度目盛の換算

// セ氏温度からケルビン温度を求める。
func KelvinFromCelsius(t_c float64) float64 {
	return t_c + 273.15
}

// ケルビン温度からセ氏温度を求める。
func CelsiusFromKelvin(t_k float64) float64 {
	return t_k - 273.15
}

// カ氏温度からランキン温度を求める。
func RankineFromFahrenheit(t_f float64) float64 {
	return t_f + 459.67
}

// ランキン温度からカ氏温度を求める。
func FahrenheitFromRankine(t_r float64) float64 {
	return t_r - 459.67
}
