// keygen creates ed25519 identities for wallet owners, guardians and bridge
// validators, and encrypts validator seeds for the relayer config.
//
//	keygen -master                       print a new base64 master key
//	keygen                               generate a random identity
//	keygen -label validator-1            derive an identity from $KEYGEN_SERVER_SEED
//	keygen -encrypt                      also print the seed encrypted under $RELAYER_MASTER_KEY
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chainsafe/aa-bridge-middleware/pkg/keys"
)

type output struct {
	Address      string `json:"address"`
	Seed         string `json:"seed"`
	EncryptedKey string `json:"encrypted_key,omitempty"`
}

func main() {
	master := flag.Bool("master", false, "Generate a base64 master key and exit")
	label := flag.String("label", "", "Derive the identity for this label instead of generating one")
	seedEnv := flag.String("seed-env", "KEYGEN_SERVER_SEED", "Env variable holding the hex server seed used with -label")
	encrypt := flag.Bool("encrypt", false, "Encrypt the seed under the master key")
	masterEnv := flag.String("master-env", "RELAYER_MASTER_KEY", "Env variable holding the base64 master key used with -encrypt")
	flag.Parse()

	if err := run(*master, *label, *seedEnv, *encrypt, *masterEnv); err != nil {
		fmt.Fprintf(os.Stderr, "keygen: %v\n", err)
		os.Exit(1)
	}
}

func run(master bool, label, seedEnv string, encrypt bool, masterEnv string) error {
	if master {
		key, err := keys.GenerateMasterKey()
		if err != nil {
			return err
		}
		fmt.Println(keys.MasterKeyToBase64(key))
		return nil
	}

	var (
		kp  *keys.KeyPair
		err error
	)
	if label != "" {
		seed, decodeErr := hex.DecodeString(strings.TrimPrefix(os.Getenv(seedEnv), "0x"))
		if decodeErr != nil {
			return fmt.Errorf("decode %s: %w", seedEnv, decodeErr)
		}
		kp, err = keys.DeriveKeyPair(label, seed)
	} else {
		kp, err = keys.GenerateKeyPair()
	}
	if err != nil {
		return err
	}

	out := output{Address: kp.PublicKeyHex(), Seed: kp.SeedHex()}
	if encrypt {
		masterKey, err := keys.MasterKeyFromBase64(os.Getenv(masterEnv))
		if err != nil {
			return fmt.Errorf("read %s: %w", masterEnv, err)
		}
		if out.EncryptedKey, err = keys.EncryptPrivateKey(kp.Seed(), masterKey); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
