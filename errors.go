package psychrometrics

import "errors"

// 計算器が返すエラーの種別

// 単位系が束縛されていない、または不明な単位系が指定された。
var ErrUnitSystem = errors.New("unit system is not set")

// 入力値が物理的または数学的に有効な範囲の外にある。
var ErrOutOfRange = errors.New("value is out of valid range")

// 収束計算が最大反復回数以内に収束しなかった。
var ErrNotConverged = errors.New("iteration did not converge")
