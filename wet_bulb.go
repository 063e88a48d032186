package psychrometrics

import (
	"fmt"
	"math"
)

/*
乾球温度と湿球温度から湿度比を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_wb: 湿球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(33)および式(35)
        湿球温度が凝固点以上か未満かで式を切り替える。
        湿球温度が乾球温度を超える場合はエラーを返す。
        結果は湿度比の下限値で下支えする。
*/
func (self *Psychrometrics) HumidityRatioFromWetBulb(t_db float64, t_wb float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if t_wb > t_db {
		return 0.0, fmt.Errorf("%w: wet bulb temperature %g is above dry bulb temperature %g",
			ErrOutOfRange, t_wb, t_db)
	}

	// 湿球温度における飽和湿度比
	w_s_star, err := self.SatHumidityRatio(t_wb, pressure)
	if err != nil {
		return 0.0, err
	}

	var w float64
	if self.units == UnitSystemIP {
		if t_wb >= self._t_freezing() {
			// 式(35)
			w = ((1093.0-0.556*t_wb)*w_s_star - 0.240*(t_db-t_wb)) /
				(1093.0 + 0.444*t_db - t_wb)
		} else {
			// 式(37)
			w = ((1220.0-0.04*t_wb)*w_s_star - 0.240*(t_db-t_wb)) /
				(1220.0 + 0.444*t_db - 0.48*t_wb)
		}
	} else {
		if t_wb >= self._t_freezing() {
			// 式(33)
			w = ((2501.0-2.326*t_wb)*w_s_star - 1.006*(t_db-t_wb)) /
				(2501.0 + 1.86*t_db - 4.186*t_wb)
		} else {
			// 式(35)
			w = ((2830.0-0.24*t_wb)*w_s_star - 1.006*(t_db-t_wb)) /
				(2830.0 + 1.86*t_db - 2.1*t_wb)
		}
	}

	return math.Max(w, min_hum_ratio), nil
}

/*
湿度比から湿球温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿球温度, degree C (SI) または degree F (IP)

    Notes:
        湿球温度から湿度比を求める式を二分法で逆算する。
        湿度比が負の場合はエラーを返す。
        湿度比は下限値で下支えしてから使用する。
*/
func (self *Psychrometrics) WetBulbFromHumidityRatio(t_db float64, w float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	t_wb, _, err := self._wet_bulb_bisection(t_db, math.Max(w, min_hum_ratio), pressure)

	return t_wb, err
}

/*
二分法により湿球温度から湿度比を求める式を逆算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比（下支え済み）, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        (1) 湿球温度, degree C (SI) または degree F (IP)
        (2) 反復回数

    Notes:
        探索区間は [露点温度, 乾球温度]。同一の空気塊では
        露点温度 <= 湿球温度 <= 乾球温度 が成り立つため、
        露点温度は有効な下限となる。
        乾球温度と大気圧を固定したとき湿度比は湿球温度に対して
        単調非減少であることを仮定する。二分法の正しさはこの
        単調性に依存する。
        最大反復回数以内に収束しない場合はエラーを返す。
*/
func (self *Psychrometrics) _wet_bulb_bisection(t_db float64, w float64, pressure float64) (float64, int, error) {
	t_dp, err := self.DewPointFromHumidityRatio(t_db, w, pressure)
	if err != nil {
		return 0.0, 0, err
	}

	t_wb_inf := t_dp
	t_wb_sup := t_db
	t_wb := (t_wb_inf + t_wb_sup) / 2.0

	index := 0
	for t_wb_sup-t_wb_inf > self.tol {
		index++
		if index > max_iter_count {
			return 0.0, index, fmt.Errorf("%w: wet bulb not found within %d iterations",
				ErrNotConverged, max_iter_count)
		}

		// 候補の湿球温度が意味する湿度比
		w_star, err := self.HumidityRatioFromWetBulb(t_db, t_wb, pressure)
		if err != nil {
			return 0.0, index, err
		}

		if w_star > w {
			t_wb_sup = t_wb
		} else {
			t_wb_inf = t_wb
		}

		t_wb = (t_wb_sup + t_wb_inf) / 2.0
	}

	return t_wb, index, nil
}

/*
相対湿度から湿球温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        rel_hum: 相対湿度, - ([0, 1])
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿球温度, degree C (SI) または degree F (IP)
*/
func (self *Psychrometrics) WetBulbFromRelHum(t_db float64, rel_hum float64, pressure float64) (float64, error) {
	w, err := self.HumidityRatioFromRelHum(t_db, rel_hum, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.WetBulbFromHumidityRatio(t_db, w, pressure)
}

/*
露点温度から湿球温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_dp: 露点温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿球温度, degree C (SI) または degree F (IP)
*/
func (self *Psychrometrics) WetBulbFromDewPoint(t_db float64, t_dp float64, pressure float64) (float64, error) {
	w, err := self.HumidityRatioFromDewPoint(t_dp, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.WetBulbFromHumidityRatio(t_db, w, pressure)
}
