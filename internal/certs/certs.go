// SPDX-FileCopyrightText: 2026 The matrix-runner Authors
// SPDX-License-Identifier: MIT

// SPDX-FileCopyrightText: 2018 The mkcert Authors
// SPDX-License-Identifier: BSD-3-Clause

// This code is based on https://github.com/FiloSottile/mkcert

// Package certs generates the certificate material behind each certificate
// profile in the matrix: one development root plus a leaf per profile.
package certs

import (
	"crypto"
	"crypto/rand"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/pem"
	"errors"
	"io"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/tls-conformance/matrix-runner/internal/matrix"
)

// Config carries the generation parameters shared by root and leaf
// certificates.
type Config struct {
	// Rand defaults to crypto/rand. The Reader must be safe for use by
	// multiple goroutines.
	Rand io.Reader

	Hostnames []string

	ValidFrom time.Time
	ValidFor  time.Duration

	// ForClient additionally marks the leaf for client authentication.
	ForClient bool
}

func (c *Config) rand() io.Reader {
	if c.Rand != nil {
		return c.Rand
	}
	return rand.Reader
}

// MakeRootCertificate writes a self-signed CA certificate and key.
func MakeRootCertificate(config *Config, outPath string, outKeyPath string) error {
	signer, err := rootSigner(config.rand())
	if err != nil {
		return err
	}

	spkiASN1, err := x509.MarshalPKIXPublicKey(signer.Public())
	if err != nil {
		return err
	}
	var spki struct {
		Algorithm        pkix.AlgorithmIdentifier
		SubjectPublicKey asn1.BitString
	}
	if _, err := asn1.Unmarshal(spkiASN1, &spki); err != nil {
		return err
	}
	skid := sha1.Sum(spki.SubjectPublicKey.Bytes)

	serialNumber, err := randomSerial(config.rand())
	if err != nil {
		return err
	}

	tpl := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization:       []string{"matrix-runner development CA"},
			OrganizationalUnit: []string{"matrix-runner"},
			CommonName:         "matrix-runner",
		},
		SubjectKeyId: skid[:],

		NotBefore: config.ValidFrom,
		NotAfter:  config.ValidFrom.Add(config.ValidFor),

		KeyUsage: x509.KeyUsageCertSign,

		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLenZero:        true,
	}

	cert, err := x509.CreateCertificate(config.rand(), tpl, tpl, signer.Public(), signer)
	if err != nil {
		return err
	}
	return writeCertAndKey(cert, signer, outPath, outKeyPath)
}

// MakeLeafCertificate writes a leaf certificate and key for profile, signed
// by the root at inCertPath/inKeyPath.
func MakeLeafCertificate(profile *matrix.Cert, config *Config, inCertPath, inKeyPath, outPath, outKeyPath string) error {
	signer, err := leafSigner(profile, config.rand())
	if err != nil {
		return err
	}

	serialNumber, err := randomSerial(config.rand())
	if err != nil {
		return err
	}

	tpl := &x509.Certificate{
		SerialNumber: serialNumber,
		Subject: pkix.Name{
			Organization:       []string{"matrix-runner development certificate"},
			OrganizationalUnit: []string{profile.Name},
		},

		NotBefore: config.ValidFrom,
		NotAfter:  config.ValidFrom.Add(config.ValidFor),

		KeyUsage:    x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	for _, h := range config.Hostnames {
		if ip := net.ParseIP(h); ip != nil {
			tpl.IPAddresses = append(tpl.IPAddresses, ip)
		} else {
			tpl.DNSNames = append(tpl.DNSNames, h)
		}
	}

	if config.ForClient {
		tpl.ExtKeyUsage = append(tpl.ExtKeyUsage, x509.ExtKeyUsageClientAuth)
	}

	if profile.SigAlgorithm == matrix.AlgorithmRSAPSS {
		tpl.SignatureAlgorithm = x509.SHA256WithRSAPSS
	}

	parentCert, parentKey, err := readCertAndKey(inCertPath, inKeyPath)
	if err != nil {
		return err
	}

	cert, err := x509.CreateCertificate(config.rand(), tpl, parentCert, signer.Public(), parentKey)
	if err != nil {
		return err
	}
	return writeCertAndKey(cert, signer, outPath, outKeyPath)
}

// GenerateAll writes a root plus one leaf per certificate profile into dir.
// Leaf files are named after their profile.
func GenerateAll(config *Config, dir string) error {
	rootCert := filepath.Join(dir, "root.crt")
	rootKey := filepath.Join(dir, "root.key")
	if err := MakeRootCertificate(config, rootCert, rootKey); err != nil {
		return err
	}
	for _, profile := range matrix.Certificates() {
		err := MakeLeafCertificate(profile, config,
			rootCert, rootKey,
			filepath.Join(dir, profile.Name+".crt"),
			filepath.Join(dir, profile.Name+".key"))
		if err != nil {
			return err
		}
	}
	return nil
}

// CertPath and KeyPath locate the generated material for a profile.
func CertPath(dir string, profile *matrix.Cert) string {
	return filepath.Join(dir, profile.Name+".crt")
}

func KeyPath(dir string, profile *matrix.Cert) string {
	return filepath.Join(dir, profile.Name+".key")
}

func randomSerial(rng io.Reader) (*big.Int, error) {
	serialNumberLimit := new(big.Int).Lsh(big.NewInt(1), 128)
	return rand.Int(rng, serialNumberLimit)
}

func writeCertAndKey(certDER []byte, signer crypto.Signer, outPath, outKeyPath string) error {
	privDER, err := x509.MarshalPKCS8PrivateKey(signer)
	if err != nil {
		return err
	}
	err = os.WriteFile(outKeyPath, pem.EncodeToMemory(
		&pem.Block{Type: "PRIVATE KEY", Bytes: privDER}), 0600)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, pem.EncodeToMemory(
		&pem.Block{Type: "CERTIFICATE", Bytes: certDER}), 0644)
}

func readCertAndKey(certPath, keyPath string) (*x509.Certificate, any, error) {
	certPEMBlock, err := os.ReadFile(certPath)
	if err != nil {
		return nil, nil, err
	}
	certDERBlock, _ := pem.Decode(certPEMBlock)
	if certDERBlock == nil || certDERBlock.Type != "CERTIFICATE" {
		return nil, nil, errors.New("failed to read input certificate: unexpected content")
	}
	cert, err := x509.ParseCertificate(certDERBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}

	keyPEMBlock, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, nil, err
	}
	keyDERBlock, _ := pem.Decode(keyPEMBlock)
	if keyDERBlock == nil || keyDERBlock.Type != "PRIVATE KEY" {
		return nil, nil, errors.New("failed to read input key: unexpected content")
	}
	key, err := x509.ParsePKCS8PrivateKey(keyDERBlock.Bytes)
	if err != nil {
		return nil, nil, err
	}
	return cert, key, nil
}
