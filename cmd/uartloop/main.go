// Uartloop checks the selected board's two default UARTs against each other.
// Jumper uart0 TX to uart1 RX; every second a numbered line is sent and the
// echo is verified.
package main

import (
	"time"

	"github.com/danforbes/rp-hal/boards/selected"
	"github.com/danforbes/rp-hal/platform"
	"github.com/danforbes/rp-hal/x/conv"
)

const echoWait = 500 * time.Millisecond

func main() {
	time.Sleep(1500 * time.Millisecond)

	b := selected.Board()
	f := platform.Default()
	u0, err := b.OpenUART(f.UART, "uart0")
	if err != nil {
		println("Error: uartloop: uart0:", err.Error())
		return
	}
	u1, err := b.OpenUART(f.UART, "uart1")
	if err != nil {
		println("Error: uartloop: uart1:", err.Error())
		return
	}
	println("Info: uartloop:", b.Name(), "uart0 -> uart1")

	l := newLink(u0, u1)
	for n := 0; ; n++ {
		if err := l.ping([]byte("ping "+conv.Dec(n)+"\n"), echoWait); err != nil {
			println("Info: uartloop: FAIL", err.Error())
		} else {
			println("Info: uartloop: ok", conv.Dec(n))
		}
		time.Sleep(time.Second)
	}
}
