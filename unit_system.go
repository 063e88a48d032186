package psychrometrics

import (
	"fmt"
)

// 単位系
type UnitSystem string

// 単位系の定数
const (
	UnitSystemIP UnitSystem = "IP" // インチ・ポンド法
	UnitSystemSI UnitSystem = "SI" // 国際単位系
)

// 文字列から単位系を求める。
func UnitSystemFromString(str string) (UnitSystem, error) {
	switch str {
	case "IP":
		return UnitSystemIP, nil
	case "SI":
		return UnitSystemSI, nil
	default:
		return "", fmt.Errorf("%w: unknown unit system %q", ErrUnitSystem, str)
	}
}

func (u UnitSystem) String() string {
	return string(u)
}

/*
湿り空気の状態値計算器。

    単位系は生成時に一度だけ束縛し、以後変更しない。
    収束判定値と飽和水蒸気圧式の適用温度範囲は単位系から導出する。
    ゼロ値のまま使用した場合、すべての計算はエラーを返す。
*/
type Psychrometrics struct {
	units UnitSystem
	tol   float64 // 収束判定値, K 相当 (SI) または °R 相当 (IP)
	t_min float64 // 飽和水蒸気圧式の適用下限温度, degree C (SI) または degree F (IP)
	t_max float64 // 飽和水蒸気圧式の適用上限温度, degree C (SI) または degree F (IP)
}

/*
計算器を生成する。

    Args:
        units: 単位系 (UnitSystemIP または UnitSystemSI)

    Returns:
        湿り空気の状態値計算器

    Notes:
        収束判定値は SI の場合 0.001 K、IP の場合 0.001 * 9/5 °R とする。
        飽和水蒸気圧式の適用温度範囲は SI の場合 [-100, 200] degree C、
        IP の場合 [-148, 392] degree F とする。
        ASHRAE Handbook - Fundamentals (2017) Chapter 1
*/
func NewPsychrometrics(units UnitSystem) (*Psychrometrics, error) {
	switch units {
	case UnitSystemIP:
		return &Psychrometrics{
			units: units,
			tol:   0.001 * 9.0 / 5.0,
			t_min: -148.0,
			t_max: 392.0,
		}, nil
	case UnitSystemSI:
		return &Psychrometrics{
			units: units,
			tol:   0.001,
			t_min: -100.0,
			t_max: 200.0,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown unit system %q", ErrUnitSystem, string(units))
	}
}

// 束縛された単位系を返す。
func (self *Psychrometrics) UnitSystem() UnitSystem {
	return self.units
}

// 収束判定値を返す。
func (self *Psychrometrics) Tolerance() float64 {
	return self.tol
}

// 単位系がIPかどうかを返す。単位系が束縛されていない場合はエラーを返す。
func (self *Psychrometrics) IsImperial() (bool, error) {
	if err := self._check(); err != nil {
		return false, err
	}
	return self.units == UnitSystemIP, nil
}

// 単位系が正しく束縛されているかを確認する。
func (self *Psychrometrics) _check() error {
	switch self.units {
	case UnitSystemIP, UnitSystemSI:
		return nil
	default:
		return fmt.Errorf("%w: construct with NewPsychrometrics before use", ErrUnitSystem)
	}
}

// 水の三重点温度, degree C (SI) または degree F (IP)
// 飽和水蒸気圧式の分岐点。凝固点ではなく三重点を用いる。
func (self *Psychrometrics) _t_triple() float64 {
	if self.units == UnitSystemIP {
		return 32.018
	}
	return 0.01
}

// 水の凝固点温度, degree C (SI) または degree F (IP)
func (self *Psychrometrics) _t_freezing() float64 {
	if self.units == UnitSystemIP {
		return 32.0
	}
	return 0.0
}
