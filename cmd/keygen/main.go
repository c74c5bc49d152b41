// Command keygen prints a freshly generated base64 AES-256 key suitable for
// the CHECKIN_ENCRYPTION_KEY setting.
package main

import (
	"fmt"
	"os"

	"github.com/fiumana/guestdesk/internal/crypto"
)

func main() {
	key, err := crypto.GenerateKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating key: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(key)
}
