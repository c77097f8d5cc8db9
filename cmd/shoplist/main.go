// Package main is the entry point for the application.
//
// @title Shopping List API
// @version 1.0
// @description In-memory shopping list: add, toggle, filter and delete products.
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
package main

import "github.com/yourorg/shoplist/cmd/shoplist/cmd"

func main() {
	cmd.Execute()
}
