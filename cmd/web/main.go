package main

import "fitstream_backend/internal/app"

func main() {
	app.Run()
}
