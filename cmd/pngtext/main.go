// cmd/pngtext/main.go
package main

import (
	"pngtext/internal/app"
	"pngtext/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
