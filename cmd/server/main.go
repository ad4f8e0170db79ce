package main

import "floraconcierge/backend/internal/app"

func main() {
	app.Run()
}
