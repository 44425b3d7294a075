//go:build !(board_adafruit_feather_rp2040 || board_adafruit_itsy_bitsy_rp2040 || board_adafruit_qt_py_rp2040 || board_pimoroni_tiny2040 || board_seeeduino_xiao_rp2040 || board_sparkfun_pro_micro_rp2040 || board_waveshare_rp2040_zero)

package selected

import "github.com/danforbes/rp-hal/boards/rppico"

const name = rppico.Name
