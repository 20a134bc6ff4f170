// Command pinhash prints a bcrypt hash for KIOSK_SETTINGS_PIN_HASH.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/akyairhashvil/takvim/internal/util"
	"github.com/fatih/color"
	"golang.org/x/term"
)

func main() {
	pin, err := promptForPIN("Settings PIN (4-12 digits): ")
	if err == nil {
		var confirm string
		confirm, err = promptForPIN("Repeat PIN: ")
		if err == nil && confirm != pin {
			err = errors.New("PINs do not match")
		}
	}
	var hash string
	if err == nil {
		hash, err = util.HashPIN(pin)
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("KIOSK_SETTINGS_PIN_HASH='%s'\n", hash)
}

func promptForPIN(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pin, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pin)), err
}
