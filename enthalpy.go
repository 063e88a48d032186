package psychrometrics

import (
	"fmt"
	"math"
)

/*
湿り空気の比エンタルピーを計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Returns:
        湿り空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(30)
*/
func (self *Psychrometrics) MoistAirEnthalpy(t_db float64, w float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_bounded := math.Max(w, min_hum_ratio)

	if self.units == UnitSystemIP {
		return 0.240*t_db + w_bounded*(1061.0+0.444*t_db), nil
	}
	return (1.006*t_db + w_bounded*(2501.0+1.86*t_db)) * 1000.0, nil
}

/*
乾き空気の比エンタルピーを計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        乾き空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)
*/
func (self *Psychrometrics) DryAirEnthalpy(t_db float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	if self.units == UnitSystemIP {
		return 0.240 * t_db, nil
	}
	return 1006.0 * t_db, nil
}

/*
比エンタルピーと湿度比から乾球温度を計算する。

    Args:
        h: 湿り空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Returns:
        乾球温度, degree C (SI) または degree F (IP)

    Notes:
        式(30)を乾球温度について解いたもの。
*/
func (self *Psychrometrics) DryBulbFromEnthalpyAndHumidityRatio(h float64, w float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_bounded := math.Max(w, min_hum_ratio)

	if self.units == UnitSystemIP {
		return (h - 1061.0*w_bounded) / (0.240 + 0.444*w_bounded), nil
	}
	return (h/1000.0 - 2501.0*w_bounded) / (1.006 + 1.86*w_bounded), nil
}

/*
比エンタルピーと乾球温度から湿度比を計算する。

    Args:
        h: 湿り空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)
        t_db: 乾球温度, degree C (SI) または degree F (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Notes:
        式(30)を湿度比について解いたもの。
*/
func (self *Psychrometrics) HumidityRatioFromEnthalpyAndDryBulb(h float64, t_db float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	var w float64
	if self.units == UnitSystemIP {
		w = (h - 0.240*t_db) / (1061.0 + 0.444*t_db)
	} else {
		w = (h/1000.0 - 1.006*t_db) / (2501.0 + 1.86*t_db)
	}

	return math.Max(w, min_hum_ratio), nil
}
