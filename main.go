package main

import (
	"github.com/meridian-libraries/disseminate/cmd"

	// Register citation style plugins
	_ "github.com/meridian-libraries/disseminate/style/apa"
	_ "github.com/meridian-libraries/disseminate/style/bibtex"
	_ "github.com/meridian-libraries/disseminate/style/chicago"
	_ "github.com/meridian-libraries/disseminate/style/ieee"
	_ "github.com/meridian-libraries/disseminate/style/legacy"
)

func main() {
	cmd.Execute()
}
