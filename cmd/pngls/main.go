// cmd/pngls/main.go
package main

import (
	"pngtext/internal/appshell"
	"pngtext/internal/lsapp"
)

func main() {
	appshell.Main(lsapp.RunContext)
}
