// Command resource resolves and reads resources by location.
//
//	resource cat assembly://app/templates.mail/welcome.txt
//	resource --config app.yaml cat config://database
//	resource resolve https://example.com/docs/index.html ../img/logo.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
