package psychrometrics

import (
	"fmt"
	"math"
)

// 氷上の飽和水蒸気圧式の係数 (SI)
// ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(5)
const (
	c1_si = -5.6745359e+03
	c2_si = 6.3925247
	c3_si = -9.677843e-03
	c4_si = 6.2215701e-07
	c5_si = 2.0747825e-09
	c6_si = -9.484024e-13
	c7_si = 4.1635019
)

// 水上の飽和水蒸気圧式の係数 (SI)
// ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(6)
const (
	c8_si  = -5.8002206e+03
	c9_si  = 1.3914993
	c10_si = -4.8640239e-02
	c11_si = 4.1764768e-05
	c12_si = -1.4452093e-08
	c13_si = 6.5459673
)

// 氷上の飽和水蒸気圧式の係数 (IP)
const (
	c1_ip = -1.0214165e+04
	c2_ip = -4.8932428
	c3_ip = -5.3765794e-03
	c4_ip = 1.9202377e-07
	c5_ip = 3.5575832e-10
	c6_ip = -9.0344688e-14
	c7_ip = 4.1635019
)

// 水上の飽和水蒸気圧式の係数 (IP)
const (
	c8_ip  = -1.0440397e+04
	c9_ip  = -1.1294650e+01
	c10_ip = -2.7022355e-02
	c11_ip = 1.2890360e-05
	c12_ip = -2.4780681e-09
	c13_ip = 6.5459673
)

/*
飽和水蒸気圧を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        飽和水蒸気圧, Pa (SI) または psi (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(5)および式(6)
        氷上・水上の2つの式は凝固点ではなく三重点で切り替える。
        凝固点で切り替えると 0 degree C 付近に不連続が生じ、
        露点温度の収束計算が破綻する。
        適用温度範囲の外ではエラーを返す。
*/
func (self *Psychrometrics) SatVaporPressure(t_db float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if t_db < self.t_min || t_db > self.t_max {
		return 0.0, fmt.Errorf("%w: dry bulb temperature %g is outside [%g, %g]",
			ErrOutOfRange, t_db, self.t_min, self.t_max)
	}

	return math.Exp(self._ln_p_ws(t_db)), nil
}

// 飽和水蒸気圧の自然対数を計算する。
// 適用温度範囲の確認は呼び出し側で行うこと。
func (self *Psychrometrics) _ln_p_ws(t_db float64) float64 {
	if self.units == UnitSystemIP {
		// 絶対温度, °R
		t := RankineFromFahrenheit(t_db)

		if t_db >= self._t_triple() {
			return c8_ip/t + c9_ip + c10_ip*t + c11_ip*t*t + c12_ip*t*t*t + c13_ip*math.Log(t)
		}
		return c1_ip/t + c2_ip + c3_ip*t + c4_ip*t*t + c5_ip*t*t*t + c6_ip*t*t*t*t + c7_ip*math.Log(t)
	}

	// 絶対温度, K
	t := KelvinFromCelsius(t_db)

	if t_db >= self._t_triple() {
		return c8_si/t + c9_si + c10_si*t + c11_si*t*t + c12_si*t*t*t + c13_si*math.Log(t)
	}
	return c1_si/t + c2_si + c3_si*t + c4_si*t*t + c5_si*t*t*t + c6_si*t*t*t*t + c7_si*math.Log(t)
}

/*
飽和水蒸気圧の自然対数の温度微分を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        d ln(p_ws) / dT, 1/K (SI) または 1/°R (IP)

    Notes:
        露点温度のニュートン・ラフソン法で使用する解析的微分。
        飽和水蒸気圧式と同じ三重点で分岐する。
*/
func (self *Psychrometrics) _d_ln_p_ws(t_db float64) float64 {
	if self.units == UnitSystemIP {
		// 絶対温度, °R
		t := RankineFromFahrenheit(t_db)

		if t_db >= self._t_triple() {
			return -c8_ip/(t*t) + c10_ip + 2.0*c11_ip*t + 3.0*c12_ip*t*t + c13_ip/t
		}
		return -c1_ip/(t*t) + c3_ip + 2.0*c4_ip*t + 3.0*c5_ip*t*t + 4.0*c6_ip*t*t*t + c7_ip/t
	}

	// 絶対温度, K
	t := KelvinFromCelsius(t_db)

	if t_db >= self._t_triple() {
		return -c8_si/(t*t) + c10_si + 2.0*c11_si*t + 3.0*c12_si*t*t + c13_si/t
	}
	return -c1_si/(t*t) + c3_si + 2.0*c4_si*t + 3.0*c5_si*t*t + 4.0*c6_si*t*t*t + c7_si/t
}

/*
飽和湿度比を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        飽和湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(21w)および式(23)
*/
func (self *Psychrometrics) SatHumidityRatio(t_db float64, pressure float64) (float64, error) {
	p_ws, err := self.SatVaporPressure(t_db)
	if err != nil {
		return 0.0, err
	}

	w_s := mol_mass_ratio * p_ws / (pressure - p_ws)

	return math.Max(w_s, min_hum_ratio), nil
}

/*
飽和空気の比エンタルピーを計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        飽和空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)
*/
func (self *Psychrometrics) SatAirEnthalpy(t_db float64, pressure float64) (float64, error) {
	w_s, err := self.SatHumidityRatio(t_db, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.MoistAirEnthalpy(t_db, w_s)
}
