package main

import "coursehub/internal/app"

// @title           CourseHub API
// @version         1.0
// @description     Аутентификация по номеру телефона и каталог курсов.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
