// cmd/cvardump/main.go
package main

import (
	"cvardump/internal/app"
	"cvardump/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
