package main

import "dealership-api/app"

func main() {
	app.Run()
}
