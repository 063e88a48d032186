package psychrometrics

import (
	"fmt"
	"math"
)

// 乾き空気の気体定数
const (
	r_da_si = 287.042 // J/(kg K)
	r_da_ip = 53.350  // ft lbf/(lb °R)
)

/*
湿り空気の比体積を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿り空気の比体積, m3/kg(DA) (SI) または ft3/lb(DA) (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(26)
        IPでは psi から lbf/ft2 への換算係数144を分母に掛ける。
*/
func (self *Psychrometrics) MoistAirVolume(t_db float64, w float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_bounded := math.Max(w, min_hum_ratio)

	if self.units == UnitSystemIP {
		return r_da_ip * RankineFromFahrenheit(t_db) * (1.0 + vol_hum_factor*w_bounded) / (144.0 * pressure), nil
	}
	return r_da_si * KelvinFromCelsius(t_db) * (1.0 + vol_hum_factor*w_bounded) / pressure, nil
}

/*
湿り空気の密度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿り空気の密度, kg/m3 (SI) または lb/ft3 (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(11)
*/
func (self *Psychrometrics) MoistAirDensity(t_db float64, w float64, pressure float64) (float64, error) {
	v, err := self.MoistAirVolume(t_db, w, pressure)
	if err != nil {
		return 0.0, err
	}

	return (1.0 + math.Max(w, min_hum_ratio)) / v, nil
}

/*
乾き空気の比体積を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        乾き空気の比体積, m3/kg (SI) または ft3/lb (IP)
*/
func (self *Psychrometrics) DryAirVolume(t_db float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	if self.units == UnitSystemIP {
		return r_da_ip * RankineFromFahrenheit(t_db) / (144.0 * pressure), nil
	}
	return r_da_si * KelvinFromCelsius(t_db) / pressure, nil
}

/*
乾き空気の密度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        乾き空気の密度, kg/m3 (SI) または lb/ft3 (IP)
*/
func (self *Psychrometrics) DryAirDensity(t_db float64, pressure float64) (float64, error) {
	v, err := self.DryAirVolume(t_db, pressure)
	if err != nil {
		return 0.0, err
	}

	return 1.0 / v, nil
}
