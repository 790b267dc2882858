package main

import (
	"github.com/gamebearonline-web/spl3-X-Bot/cmd/app"
)

func main() {
	app.Run()
}
