package daraja

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"

	"mpesa-bridge/pkg/e"
)

// SecurityCredential encrypts the initiator password with the public key of
// the gateway-issued certificate using RSA PKCS#1 v1.5 and returns the base64
// result. The output goes into configuration as MPESA_SECURITY_CREDENTIAL;
// this runs offline, never during request serving.
func SecurityCredential(cert []byte, password string) (string, error) {
	der := cert
	if block, _ := pem.Decode(cert); block != nil {
		der = block.Bytes
	}

	parsed, err := x509.ParseCertificate(der)
	if err != nil {
		return "", e.Wrap("daraja.SecurityCredential", err)
	}

	pub, ok := parsed.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", errors.New("certificate does not carry an RSA public key")
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(password))
	if err != nil {
		return "", e.Wrap("daraja.SecurityCredential", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}
