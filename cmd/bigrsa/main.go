// Command bigrsa is a thin driver wiring the core packages together: key
// generation, block encrypt/decrypt, brute-force factoring, and the
// Diffie-Hellman exchange. It is deliberately free of any CLI-parsing
// framework, dispatching on positional os.Args instead.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/vkuznetsov/bigrsa/bignum"
	"github.com/vkuznetsov/bigrsa/bruteforce"
	"github.com/vkuznetsov/bigrsa/dhexchange"
	"github.com/vkuznetsov/bigrsa/hexcodec"
	"github.com/vkuznetsov/bigrsa/internal/tsslog"
	"github.com/vkuznetsov/bigrsa/rsacipher"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	tsslog.SetLevel("info")
	codec := hexcodec.Hex{}

	switch os.Args[1] {
	case "keygen":
		keypair, err := rsacipher.GenerateKeyPair(rsacipher.DefaultPrimeDigitsP, rsacipher.DefaultPrimeDigitsQ)
		mustNot(err)
		fmt.Printf("n=%s\ne=%s\nd=%s\n", keypair.N, keypair.E, keypair.D)

	case "encrypt":
		if len(os.Args) < 5 {
			usage()
			os.Exit(1)
		}
		n := bignum.FromString(os.Args[2])
		e := bignum.FromString(os.Args[3])
		plaintext := os.Args[4]
		ciphertext, err := rsacipher.Encrypt([]byte(plaintext), n, e, codec)
		mustNot(err)
		fmt.Println(ciphertext)

	case "decrypt":
		if len(os.Args) < 5 {
			usage()
			os.Exit(1)
		}
		n := bignum.FromString(os.Args[2])
		d := bignum.FromString(os.Args[3])
		ciphertext := os.Args[4]
		plaintext, err := rsacipher.Decrypt(ciphertext, n, d, codec)
		mustNot(err)
		fmt.Println(string(plaintext))

	case "bruteforce":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		n := bignum.FromString(os.Args[2])
		e := bignum.FromString(os.Args[3])
		workers := bruteforce.DefaultWorkers
		if len(os.Args) > 4 {
			w, err := strconv.Atoi(os.Args[4])
			mustNot(err)
			workers = w
		}
		result, err := bruteforce.Run(context.Background(), n, e, workers)
		mustNot(err)
		fmt.Printf("p=%s\nq=%s\nd=%s\n", result.P, result.Q, result.D)

	case "dh":
		result, err := dhexchange.Exchange(nil, nil, nil, nil)
		mustNot(err)
		fmt.Printf("shared_prime=%s\nshared_base=%s\nsuccess=%v\n", result.SharedPrime, result.SharedBase, result.Success)

	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: bigrsa keygen | encrypt <n> <e> <plaintext> | decrypt <n> <d> <ciphertext> | bruteforce <n> <e> [workers] | dh")
}

func mustNot(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
