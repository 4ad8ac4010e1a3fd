package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mpesa-bridge/internal/daraja"

	"github.com/joho/godotenv"
)

// Offline helper: encrypts the initiator password with the gateway
// certificate and prints the security credential for manual insertion into
// configuration. Use the production certificate for production, the sandbox
// one for sandbox.
func main() {
	certPath := flag.String("cert", "certs/SandboxCertificate.cer", "path to the gateway certificate")
	flag.Parse()

	_ = godotenv.Load()

	password := os.Getenv("INITIATOR_PASSWORD")
	if password == "" {
		log.Fatal("INITIATOR_PASSWORD not found in .env")
	}

	cert, err := os.ReadFile(*certPath)
	if err != nil {
		log.Fatalf("failed to read certificate: %v", err)
	}

	credential, err := daraja.SecurityCredential(cert, password)
	if err != nil {
		log.Fatalf("failed to encrypt credential: %v", err)
	}

	fmt.Println("\nMPESA_SECURITY_CREDENTIAL")
	fmt.Println(credential)
}
