// Command keygen derives a wallet offline from an identifier and the server
// secret. Useful as support tooling for cross-checking what the server would
// derive for a given user.
//
// The secret comes from the WALLETGATE_SECRET environment variable or, when
// unset, from a no-echo terminal prompt.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/mr-tron/base58"
	"golang.org/x/term"

	"github.com/walletgate/walletgate/internal/identity"
	"github.com/walletgate/walletgate/internal/shared"
	"github.com/walletgate/walletgate/internal/wallet"
)

func main() {
	id := flag.String("i", "", "identifier (gmail address or phone number)")
	flowName := flag.String("f", "email", "derivation flow: email or phone")
	flag.Parse()

	if *id == "" {
		log.Fatal("identifier is required (-i)")
	}

	var flow identity.Flow
	switch *flowName {
	case "email":
		if !identity.ValidateEmail(*id) {
			log.Fatalf("%q is not a valid gmail address", *id)
		}
		flow = identity.FlowEmail
	case "phone":
		if !identity.ValidatePhone(*id) {
			log.Fatalf("%q is not a valid phone number", *id)
		}
		flow = identity.FlowPhone
	default:
		log.Fatalf("unknown flow %q", *flowName)
	}

	secret := []byte(os.Getenv("WALLETGATE_SECRET"))
	if len(secret) == 0 {
		fmt.Fprint(os.Stderr, "Server secret: ")
		s, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			log.Fatalf("failed to read secret: %v", err)
		}
		secret = s
	}
	defer shared.WipeByteArray(secret)

	deriver, err := wallet.NewDeriver(secret)
	if err != nil {
		log.Fatalf("%v", err)
	}

	w, err := deriver.Derive(*id, flow)
	if err != nil {
		log.Fatalf("derivation failed: %v", err)
	}
	defer shared.WipeByteArray(w.PrivateKey)

	fmt.Println("Address (Public Key):")
	fmt.Println(w.Address)
	fmt.Println()
	fmt.Println("Private Key (Base58):")
	fmt.Println(base58.Encode(w.PrivateKey))
}
