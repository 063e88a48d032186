package psychrometrics

import (
	"math"
)

/*
標準大気の気圧を計算する。

    Args:
        altitude: 標高, m (SI) または ft (IP)

    Returns:
        標準大気の気圧, Pa (SI) または psi (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(3)
*/
func (self *Psychrometrics) StandardAtmPressure(altitude float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	if self.units == UnitSystemIP {
		return 14.696 * math.Pow(1.0-6.8754e-06*altitude, 5.2559), nil
	}
	return 101325.0 * math.Pow(1.0-2.25577e-05*altitude, 5.2559), nil
}

/*
標準大気の気温を計算する。

    Args:
        altitude: 標高, m (SI) または ft (IP)

    Returns:
        標準大気の気温, degree C (SI) または degree F (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(4)
*/
func (self *Psychrometrics) StandardAtmTemperature(altitude float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	if self.units == UnitSystemIP {
		return 59.0 - 0.0035662*altitude, nil
	}
	return 15.0 - 0.0065*altitude, nil
}

/*
観測地点の気圧から海面気圧を計算する。

    Args:
        stn_pressure: 観測地点の気圧, Pa (SI) または psi (IP)
        altitude: 標高, m (SI) または ft (IP)
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        海面気圧, Pa (SI) または psi (IP)

    Notes:
        Hess SL, Introduction to theoretical meteorology, 1959
        および NOAA の観測手順に基づく。仮想の空気柱の平均温度は
        地上気温に気温減率の半分を加えて求める。
*/
func (self *Psychrometrics) SeaLevelPressure(stn_pressure float64, altitude float64, t_db float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	var h float64
	if self.units == UnitSystemIP {
		// 空気柱の平均温度, degree F（気温減率 0.0036 °F/ft）
		t_column := t_db + 0.0036*altitude/2.0

		// 空気柱のスケールハイト, ft
		h = 53.351 * RankineFromFahrenheit(t_column)
	} else {
		// 空気柱の平均温度, degree C（気温減率 0.0065 K/m）
		t_column := t_db + 0.0065*altitude/2.0

		// 空気柱のスケールハイト, m
		h = 287.055 * KelvinFromCelsius(t_column) / 9.807
	}

	return stn_pressure * math.Exp(altitude/h), nil
}

/*
海面気圧から観測地点の気圧を計算する。

    Args:
        sea_level_pressure: 海面気圧, Pa (SI) または psi (IP)
        altitude: 標高, m (SI) または ft (IP)
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        観測地点の気圧, Pa (SI) または psi (IP)
*/
func (self *Psychrometrics) StationPressure(sea_level_pressure float64, altitude float64, t_db float64) (float64, error) {
	ratio, err := self.SeaLevelPressure(1.0, altitude, t_db)
	if err != nil {
		return 0.0, err
	}

	return sea_level_pressure / ratio, nil
}
