// Command dmsctl is the operator CLI: it applies migrations, provisions
// identities and mints development access tokens.
//
// Usage:
//
//	dmsctl migrate up
//	dmsctl migrate status
//	dmsctl user create --username alice --email alice@example.com --role USER
//	dmsctl user promote --username alice
//	dmsctl token issue --username alice
//
// Configuration is read the same way as the server (CONFIG_PATH, .env, ENV).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
