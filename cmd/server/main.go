package main

import "mural-backend/internal/app"

func main() {
	app.Run()
}
