// Command toolbox выполняет инструменты из командной строки без HTTP сервера.
package main

import (
	"os"
	"time"

	"toolbox/pkg/random"
)

func main() {
	if err := newRootCmd(random.Default(), random.Crypto(), time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
